package notes

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// EmptyFieldAlert is shown to the user when ErrEmptyField blocks a save.
const EmptyFieldAlert = "Please fill in both title and content"

var (
	// ErrEmptyField is returned when a title or content is blank after trimming.
	ErrEmptyField = errors.New("title and content are required")
	// ErrInvalidCategory is returned for a category outside Categories().
	ErrInvalidCategory = errors.New("unknown category")
	// ErrCorrupt is returned by Load when the stored collection cannot be parsed.
	ErrCorrupt = errors.New("stored notes are corrupt")
)

type Category string

const (
	Personal Category = "personal"
	Work     Category = "work"
	Shopping Category = "shopping"
)

func Categories() []Category {
	return []Category{Personal, Work, Shopping}
}

func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Categories() {
		if c == known {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidCategory, s)
}

// Color is the ANSI 256 color used to tag the category on screen.
func (c Category) Color() string {
	switch c {
	case Personal:
		return "33"
	case Work:
		return "34"
	case Shopping:
		return "129"
	default:
		return "245"
	}
}

func (c Category) Label() string {
	if c == "" {
		return ""
	}
	return strings.ToUpper(string(c[:1])) + string(c[1:])
}

type Note struct {
	ID       int64    `json:"id" yaml:"id"`
	Title    string   `json:"title" yaml:"title"`
	Content  string   `json:"content" yaml:"content"`
	Category Category `json:"category" yaml:"category"`
}

// CreatedAt derives the creation time from the millisecond id.
func (n Note) CreatedAt() time.Time {
	return time.UnixMilli(n.ID)
}

// Filter selects which notes are visible. The zero value is All.
type Filter string

const All Filter = "all"

func Filters() []Filter {
	fs := []Filter{All}
	for _, c := range Categories() {
		fs = append(fs, Filter(c))
	}
	return fs
}

func ParseFilter(s string) (Filter, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == string(All) {
		return All, nil
	}
	c, err := ParseCategory(s)
	if err != nil {
		return "", err
	}
	return Filter(c), nil
}

func (f Filter) Matches(n Note) bool {
	if f == "" || f == All {
		return true
	}
	return n.Category == Category(f)
}

func (f Filter) Label() string {
	if f == "" || f == All {
		return "All"
	}
	return Category(f).Label()
}

// Marshal encodes the collection as the JSON array kept in storage.
// An empty collection encodes as [] rather than null.
func Marshal(c Collection) ([]byte, error) {
	if c == nil {
		c = Collection{}
	}
	return json.Marshal(c)
}

func Unmarshal(data []byte) (Collection, error) {
	var c Collection
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, err
	}
	return c, nil
}

func trimFields(title, content string) (string, string, error) {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)
	if title == "" || content == "" {
		return "", "", ErrEmptyField
	}
	return title, content, nil
}
