package config

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"godis-dequeue/pkg/util"
)

const (
	defaultCapacity      = 10
	defaultMaxNameLength = 32

	AllocatorHeap = "heap"
	AllocatorPool = "pool"

	ModeBytes = "bytes"
	ModeTyped = "typed"
	ModeBoth  = "both"
)

// DriverProperties drives the scenario and suite programs.
type DriverProperties struct {
	// 0 means seed from the clock
	Seed          int    `cfg:"seed"`
	Capacity      int    `cfg:"capacity"`
	MaxNameLength int    `cfg:"maxnamelength"`
	Allocator     string `cfg:"allocator"`
	Mode          string `cfg:"mode"`
	LogLevel      string `cfg:"loglevel"`
	LogPath       string `cfg:"logpath"`
	FileLog       bool   `cfg:"filelog"`

	// config file path
	CfPath string `cfg:"cf,omitempty"`
}

var Properties = Default()

// Default returns the properties used when no config file is given.
func Default() *DriverProperties {
	p := &DriverProperties{}
	p.fill()
	return p
}

func parse(src io.Reader) (*DriverProperties, error) {
	config := &DriverProperties{}

	// read config file
	rawMap := make(map[string]string)
	scanner := bufio.NewScanner(src)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		pivot := strings.IndexAny(line, " ")
		if pivot > 0 && pivot < len(line)-1 { // separator found
			key := line[0:pivot]
			value := strings.Trim(line[pivot+1:], " ")
			rawMap[strings.ToLower(key)] = value
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read config")
	}

	// parse format
	t := reflect.TypeOf(config)
	v := reflect.ValueOf(config)
	n := t.Elem().NumField()
	for i := 0; i < n; i++ {
		field := t.Elem().Field(i)
		fieldVal := v.Elem().Field(i)
		key, ok := field.Tag.Lookup("cfg")
		if !ok || strings.TrimLeft(key, " ") == "" {
			key = field.Name
		}
		key = strings.Split(key, ",")[0]
		value, ok := rawMap[strings.ToLower(key)]
		if !ok {
			continue
		}
		switch field.Type.Kind() {
		case reflect.String:
			fieldVal.SetString(value)
		case reflect.Int:
			intValue, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return nil, errors.Wrapf(err, "config key %s", key)
			}
			fieldVal.SetInt(intValue)
		case reflect.Bool:
			fieldVal.SetBool("yes" == value)
		}
	}
	config.fill()
	return config, config.validate()
}

func (p *DriverProperties) fill() {
	if p.Capacity <= 0 {
		p.Capacity = defaultCapacity
	}
	if p.MaxNameLength <= 0 {
		p.MaxNameLength = defaultMaxNameLength
	}
	if p.Allocator == "" {
		p.Allocator = AllocatorHeap
	}
	if p.Mode == "" {
		p.Mode = ModeBoth
	}
	if p.LogPath == "" {
		p.LogPath = "."
	}
}

func (p *DriverProperties) validate() error {
	switch p.Allocator {
	case AllocatorHeap, AllocatorPool:
	default:
		return errors.Errorf("unknown allocator %q", p.Allocator)
	}
	switch p.Mode {
	case ModeBytes, ModeTyped, ModeBoth:
	default:
		return errors.Errorf("unknown mode %q", p.Mode)
	}
	return nil
}

func SetUpConfig(filename string) error {
	file, err := os.Open(filename)
	if err != nil {
		return errors.Wrap(err, "open config")
	}
	defer util.Close(file)
	props, err := parse(file)
	if err != nil {
		return errors.Wrapf(err, "parse %s", filename)
	}
	props.CfPath = filename
	if abs, err := filepath.Abs(filename); err == nil {
		props.CfPath = abs
	}
	Properties = props
	return nil
}
