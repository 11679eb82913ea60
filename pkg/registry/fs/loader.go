package fs

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"sort"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/go-playground/validator"
	"github.com/google/uuid"
	"github.com/mitchellh/go-homedir"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/letterdesk/letterdesk/pkg/registry"
	"github.com/letterdesk/letterdesk/pkg/types/v1"
)

// Loader keeps the whole registry in one YAML snapshot file. Reads load the
// complete file; mutations rewrite it wholesale. The file watcher turns any
// external write into a refresh signal so the UI pulls a fresh snapshot,
// which is the only way data ever changes mid-session.
type Loader struct {
	*sync.Mutex
	File string `validate:"required"`

	letters map[v1.ID]*v1.Letter

	watcher *fsnotify.Watcher
	refresh chan struct{}
	log     zerolog.Logger
}

func New(file string, log zerolog.Logger) (*Loader, error) {
	expandedPath, err := homedir.Expand(file)
	if err != nil {
		return nil, err
	}

	l := Loader{
		Mutex:   &sync.Mutex{},
		File:    expandedPath,
		letters: map[v1.ID]*v1.Letter{},
		refresh: make(chan struct{}, 1),
		log:     log,
	}

	if err := l.Validate(); err != nil {
		return nil, fmt.Errorf("error validating storage provider: %w", err)
	}

	if err := l.load(); err != nil {
		return nil, err
	}

	if err := l.startWatcher(); err != nil {
		return nil, fmt.Errorf("unable to create watcher: %w", err)
	}

	return &l, nil
}

func (x *Loader) Validate() error {
	validate := validator.New()
	return validate.Struct(*x)
}

func (x *Loader) Path() string {
	return x.File
}

func (x *Loader) load() error {
	f, err := os.Open(x.File)
	if err != nil {
		return fmt.Errorf("unable to open %s: %w", x.File, err)
	}
	defer f.Close()

	return x.loadFromReader(f)
}

func (x *Loader) loadFromReader(r io.Reader) error {
	bytes, err := ioutil.ReadAll(r)
	if err != nil {
		return fmt.Errorf("unable to read: %w", err)
	}

	var letters []*v1.Letter
	if err := yaml.Unmarshal(bytes, &letters); err != nil {
		return fmt.Errorf("unable to deserialize letters: %w", err)
	}

	loaded := make(map[v1.ID]*v1.Letter, len(letters))
	for _, l := range letters {
		if l.ID == "" {
			l.ID = v1.ID(uuid.NewString())
		}
		if err := l.Validate(); err != nil {
			return fmt.Errorf("invalid letter %s: %w", l.ID, err)
		}
		loaded[l.ID] = l
	}

	x.Lock()
	defer x.Unlock()
	x.letters = loaded
	x.log.Debug().Int("letters", len(loaded)).Str("file", x.File).Msg("snapshot loaded")

	return nil
}

func (x *Loader) startWatcher() error {
	if x.watcher != nil {
		_ = x.watcher.Close()
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	err = watcher.Add(x.File)
	if err != nil {
		return fmt.Errorf("unable to watch %s: %w", x.File, err)
	}

	x.watcher = watcher

	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Create == fsnotify.Create {
					if err := x.load(); err != nil {
						x.log.Error().Err(err).Msg("error reloading snapshot")
						continue
					}
					x.notify()
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				x.log.Error().Err(err).Msg("watcher error")
			}
		}
	}()
	return nil
}

// notify queues a refresh signal without blocking; one pending signal is
// enough for any number of coalesced writes.
func (x *Loader) notify() {
	select {
	case x.refresh <- struct{}{}:
	default:
	}
}

func (x *Loader) Watch() <-chan struct{} {
	return x.refresh
}

func (x *Loader) Get(id v1.ID) (*v1.Letter, error) {
	x.Lock()
	defer x.Unlock()

	l, ok := x.letters[id]
	if !ok {
		return nil, registry.ErrNoLetterFound
	}
	return l, nil
}

func (x *Loader) Count() int {
	x.Lock()
	defer x.Unlock()
	return len(x.letters)
}

// Snapshot returns the active letters newest first. The slice is freshly
// allocated on every call so collection identity changes exactly when the
// data does.
func (x *Loader) Snapshot() ([]*v1.Letter, error) {
	return x.list(false)
}

// Trash returns the soft-deleted letters newest first.
func (x *Loader) Trash() ([]*v1.Letter, error) {
	return x.list(true)
}

func (x *Loader) list(deleted bool) ([]*v1.Letter, error) {
	x.Lock()
	defer x.Unlock()

	sorted := []*v1.Letter{}
	for _, l := range x.letters {
		if l.Deleted == deleted {
			sorted = append(sorted, l)
		}
	}
	sort.Sort(v1.ByReceivedAtDesc(sorted))
	return sorted, nil
}

// SoftDelete marks the given letters deleted and rewrites the snapshot
// file. Unknown ids fail the whole batch before anything is written.
func (x *Loader) SoftDelete(ids ...v1.ID) error {
	return x.setDeleted(true, ids)
}

// Restore returns soft-deleted letters to the active set.
func (x *Loader) Restore(ids ...v1.ID) error {
	return x.setDeleted(false, ids)
}

func (x *Loader) setDeleted(deleted bool, ids []v1.ID) error {
	x.Lock()
	defer x.Unlock()

	for _, id := range ids {
		if _, ok := x.letters[id]; !ok {
			return fmt.Errorf("letter %s: %w", id, registry.ErrNoLetterFound)
		}
	}
	for _, id := range ids {
		x.letters[id].Deleted = deleted
	}

	if err := x.write(); err != nil {
		return err
	}
	x.log.Debug().Int("letters", len(ids)).Bool("deleted", deleted).Msg("bulk update written")
	return nil
}

// write rewrites the snapshot file in a stable order. The watcher will see
// the write and round-trip it into a refresh signal, which is exactly the
// full-snapshot reload path external mutations take.
func (x *Loader) write() error {
	all := make([]*v1.Letter, 0, len(x.letters))
	for _, l := range x.letters {
		all = append(all, l)
	}
	sort.Sort(v1.ByReceivedAtDesc(all))

	out, err := yaml.Marshal(all)
	if err != nil {
		return fmt.Errorf("unable to marshal letters: %w", err)
	}

	f, err := os.OpenFile(x.File, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.Write(out); err != nil {
		return fmt.Errorf("unable to write %s: %w", x.File, err)
	}
	return f.Sync()
}
