package model

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/letterdesk/letterdesk/pkg/registry"
	"github.com/letterdesk/letterdesk/pkg/types/v1"
)

func loadSnapshot(store registry.Store) tea.Cmd {
	return func() tea.Msg {
		letters, err := store.Snapshot()
		if err != nil {
			return errMsg{err}
		}
		return snapshotLoadedMsg(letters)
	}
}

// waitForStoreChange blocks on the store's watch channel and turns the next
// signal into a message. The top-level update re-issues this command after
// every signal so the subscription stays alive for the whole session.
func waitForStoreChange(store registry.Store) tea.Cmd {
	return func() tea.Msg {
		<-store.Watch()
		return storeChangedMsg{}
	}
}

func waitForDebounce(gen int, t *time.Timer) tea.Cmd {
	return func() tea.Msg {
		<-t.C
		return debounceElapsedMsg(gen)
	}
}

func waitForStatusMessageTimeout(appCtx applicationContext, t *time.Timer) tea.Cmd {
	return func() tea.Msg {
		<-t.C
		return statusMessageTimeoutMsg(appCtx)
	}
}

func softDeleteLetters(store registry.Store, ids []v1.ID) tea.Cmd {
	return func() tea.Msg {
		if err := store.SoftDelete(ids...); err != nil {
			return errMsg{err}
		}
		return lettersDeletedMsg(ids)
	}
}

func restoreLetters(store registry.Store, ids []v1.ID) tea.Cmd {
	return func() tea.Msg {
		if err := store.Restore(ids...); err != nil {
			return errMsg{err}
		}
		return lettersRestoredMsg(ids)
	}
}

func exportLetters(exporter registry.Exporter, letters []*v1.Letter) tea.Cmd {
	return func() tea.Msg {
		path, err := exporter.Export(letters)
		if err != nil {
			return errMsg{err}
		}
		return exportDoneMsg(path)
	}
}
