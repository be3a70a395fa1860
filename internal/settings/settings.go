// Package settings provides read-only access to persisted user preferences.
package settings

import (
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"strings"
	"sync"

	"github.com/BrugadaSyndrome/bslogger"
)

// Exported constants.
const (
	// KeyDisplayMagnificationScale is the user's magnification zoom factor.
	KeyDisplayMagnificationScale = "accessibility_display_magnification_scale"
	// CurrentUser is the user the simulator reads preferences for unless told otherwise.
	CurrentUser = 0
	// DefaultScale is used when no scale has been persisted.
	DefaultScale = 2.0
	// MinScale is the smallest scale a magnifier accepts.
	MinScale = 1.0
	// MaxScale is the largest scale a magnifier accepts.
	MaxScale = 8.0
)

// Exported variables.
var (
	ErrInvalidSetting  = errors.New("invalid setting value")
	ErrSettingNotFound = errors.New("setting not found")
	ErrUnknownFormat   = errors.New("unknown settings format")
)

// Source reads persisted floating-point settings for a user.
type Source interface {
	Float(key string, user int) (float64, error)
}

// Open opens a read-only source for path, chosen by file extension. logger receives reload
// warnings from file sources. An empty path yields an empty in-memory source.
func Open(path string, logger bslogger.Logger) (Source, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case "":
		if path == "" {
			return NewMemory(), nil
		}
	case ".yaml", ".yml":
		return OpenFile(path, logger)
	case ".db", ".sqlite", ".sqlite3":
		return OpenSQLite(path)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
}

// Memory is an in-memory Source. Put exists for seeding; consumers only read.
type Memory struct {
	mu     sync.RWMutex
	values map[int]map[string]float64
}

// NewMemory creates an empty in-memory source.
func NewMemory() *Memory {
	return &Memory{values: make(map[int]map[string]float64)}
}

// Float implements Source.
func (m *Memory) Float(key string, user int) (float64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.values[user][key]
	if !ok {
		return 0, fmt.Errorf("%w: %s for user %d", ErrSettingNotFound, key, user)
	}
	return value, nil
}

// Put stores value under key for user.
func (m *Memory) Put(key string, user int, value float64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.values[user] == nil {
		m.values[user] = make(map[string]float64)
	}
	m.values[user][key] = value
}

// Clear removes every stored value.
func (m *Memory) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.values = make(map[int]map[string]float64)
}

// ScaleProvider reads the persisted magnification scale for one user.
type ScaleProvider struct {
	Source Source
	User   int
	logger bslogger.Logger
}

// NewScaleProvider creates a provider reading from source on behalf of user.
func NewScaleProvider(source Source, user int, logger bslogger.Logger) *ScaleProvider {
	return &ScaleProvider{
		Source: source,
		User:   user,
		logger: logger,
	}
}

// Scale returns the persisted scale clamped to [MinScale, MaxScale], or DefaultScale when
// nothing usable is stored.
func (p *ScaleProvider) Scale() float64 {
	value, err := p.Source.Float(KeyDisplayMagnificationScale, p.User)
	if err != nil {
		if !errors.Is(err, ErrSettingNotFound) {
			p.logger.Warningf("Reading persisted scale for user %d: %s", p.User, err)
		}
		return DefaultScale
	}
	return ClampScale(value)
}

// ClampScale limits scale to the range magnifiers accept. NaN maps to DefaultScale.
func ClampScale(scale float64) float64 {
	if math.IsNaN(scale) {
		return DefaultScale
	}
	return min(max(scale, MinScale), MaxScale)
}
