package config

import (
	"fmt"
	"io"
	"io/ioutil"
	"time"

	"github.com/adrg/xdg"
	"github.com/go-playground/validator"
	"gopkg.in/yaml.v3"

	"github.com/letterdesk/letterdesk/pkg/types/v1"
)

const (
	XDGName = "letterdesk"
)

var (
	// Default is the default configuration that is used, along with
	// ~/.letterdesk.yaml
	Default = Config{
		DataFile:          "~/.letterdesk.d/letters.yaml",
		DefaultDirection:  v1.DirectionIncoming,
		PageSize:          25,
		PageSizeMenu:      []int{25, 50, 100},
		WindowedThreshold: 100,
		DebounceInterval:  300 * time.Millisecond,
		RowHeight:         3,
		MaxListHeight:     60,
		Overscan:          5,
		DetailCloseDelay:  200 * time.Millisecond,
	}
)

type Config struct {
	// DataFile is the YAML snapshot holding the whole registry.
	DataFile string `yaml:"dataFile" validate:"required"`

	// DefaultDirection selects the tab shown at startup.
	DefaultDirection v1.Direction `yaml:"defaultDirection" validate:"required,oneof=incoming outgoing"`

	PageSize     int   `yaml:"pageSize" validate:"required,min=1"`
	PageSizeMenu []int `yaml:"pageSizeMenu" validate:"required,unique"`

	// WindowedThreshold is the filtered-result size above which the list
	// switches from pages to continuous windowed scrolling.
	WindowedThreshold int `yaml:"windowedThreshold" validate:"required,min=1"`

	DebounceInterval time.Duration `yaml:"debounceInterval" validate:"required"`

	// RowHeight and MaxListHeight are in terminal lines.
	RowHeight     int `yaml:"rowHeight" validate:"required,min=1"`
	MaxListHeight int `yaml:"maxListHeight" validate:"min=0"`
	Overscan      int `yaml:"overscan" validate:"min=0"`

	// DetailCloseDelay is how long the closed detail view retains its
	// record reference so the exit transition can finish. Presentation
	// only; nothing may depend on it for correctness.
	DetailCloseDelay time.Duration `yaml:"detailCloseDelay" validate:"min=0"`
}

func NewFromReader(r io.Reader) (*Config, error) {
	c := Default

	bytes, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("unable to read Config: %w", err)
	}
	err = yaml.Unmarshal(bytes, &c)
	if err != nil {
		return nil, fmt.Errorf("unable to unmarshal Config: %w", err)
	}

	validate := validator.New()
	err = validate.Struct(c)
	if err != nil {
		return nil, fmt.Errorf("config validation error: %w", err)
	}

	return &c, nil
}

func RuntimeFile(filename string) (string, error) {
	return xdg.RuntimeFile(fmt.Sprintf("%s/%s", XDGName, filename))
}
