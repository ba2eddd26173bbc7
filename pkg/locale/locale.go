package locale

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed strings/*.yaml
var embedded embed.FS

// DefaultLanguage is used when nothing better matches the requested language.
const DefaultLanguage = "en"

// Entry is the display name and authored description of an item, container or room.
type Entry struct {
	Name string `yaml:"name" validate:"required"`
	Desc string `yaml:"desc" validate:"required"`
}

// Strings is one loaded localization resource. It is read-only after loading.
type Strings struct {
	Language string `yaml:"language" validate:"required"`
	Player   struct {
		NameDefault string `yaml:"name_default" validate:"required"`
	} `yaml:"player"`
	Stems struct {
		Item      string `yaml:"item"`
		Container string `yaml:"container"`
	} `yaml:"stems"`
	Items      map[string]Entry    `yaml:"items" validate:"required,dive"`
	Containers map[string]Entry    `yaml:"containers" validate:"required,dive"`
	Rooms      map[string]Entry    `yaml:"rooms" validate:"required,dive"`
	Lists      map[string][]string `yaml:"lists" validate:"required"`
	Messages   map[string]string   `yaml:"messages" validate:"required"`
	Filter     map[string]string   `yaml:"filter"` // Word -> replacement for player-chosen names

	tag   language.Tag
	lower cases.Caser
}

// Languages lists the embedded languages, default first.
func Languages() ([]language.Tag, error) {
	files, err := fs.Glob(embedded, "strings/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to list embedded strings: %w", err)
	}
	tags := []language.Tag{language.Make(DefaultLanguage)}
	for _, f := range files {
		name := strings.TrimSuffix(path.Base(f), ".yaml")
		if name == DefaultLanguage {
			continue
		}
		tag, err := language.Parse(name)
		if err != nil {
			return nil, fmt.Errorf("embedded strings file %s: %w", f, err)
		}
		tags = append(tags, tag)
	}
	return tags, nil
}

// Load returns the embedded strings that best match lang, falling back to DefaultLanguage.
func Load(lang string) (*Strings, error) {
	tags, err := Languages()
	if err != nil {
		return nil, err
	}
	requested, err := language.Parse(lang)
	if err != nil {
		requested = tags[0]
	}
	_, idx, _ := language.NewMatcher(tags).Match(requested)
	name := tags[idx].String()

	data, err := embedded.ReadFile("strings/" + name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read strings for %s: %w", name, err)
	}
	return Parse(data)
}

// LoadFile reads a strings file from disk.
func LoadFile(filename string) (*Strings, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read strings file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML strings document.
func Parse(data []byte) (*Strings, error) {
	var s Strings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse strings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	tag, err := language.Parse(s.Language)
	if err != nil {
		return nil, fmt.Errorf("invalid language %q: %w", s.Language, err)
	}
	s.tag = tag
	s.lower = cases.Lower(tag)
	return &s, nil
}

// Validate checks struct constraints and that every key the game looks up is present.
func (s *Strings) Validate() error {
	if err := validator.New().Struct(s); err != nil {
		return fmt.Errorf("invalid strings: %w", err)
	}
	var missing []string
	for _, k := range RequiredItems {
		if _, ok := s.Items[k]; !ok {
			missing = append(missing, "items."+k)
		}
	}
	for _, k := range RequiredContainers {
		if _, ok := s.Containers[k]; !ok {
			missing = append(missing, "containers."+k)
		}
	}
	for _, k := range RequiredRooms {
		if _, ok := s.Rooms[k]; !ok {
			missing = append(missing, "rooms."+k)
		}
	}
	for _, k := range RequiredLists {
		if len(s.Lists[k]) == 0 {
			missing = append(missing, "lists."+k)
		}
	}
	for _, k := range RequiredMessages {
		if _, ok := s.Messages[k]; !ok {
			missing = append(missing, "messages."+k)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("strings file is missing keys: %s", strings.Join(missing, ", "))
	}
	return nil
}

// Tag is the language of the loaded strings.
func (s *Strings) Tag() language.Tag {
	return s.tag
}

// Msg formats a message. Unknown keys come back as the key itself so gaps are visible in play.
func (s *Strings) Msg(key string, args ...any) string {
	text, ok := s.Messages[key]
	if !ok {
		return key
	}
	if len(args) == 0 {
		return text
	}
	return fmt.Sprintf(text, args...)
}

func (s *Strings) List(key string) []string {
	return s.Lists[key]
}

// Lower case-folds player input using the rules of the loaded language.
func (s *Strings) Lower(text string) string {
	return s.lower.String(text)
}

// FilterWords is the word replacement table for names players choose. It may be empty.
func (s *Strings) FilterWords() map[string]string {
	return s.Filter
}

func (s *Strings) DefaultPlayerName() string {
	return s.Player.NameDefault
}

// Item, Container, Room and the stems satisfy world.Catalog.

func (s *Strings) Item(key string) (string, string) {
	e := s.Items[key]
	return e.Name, e.Desc
}

func (s *Strings) Container(key string) (string, string) {
	e := s.Containers[key]
	return e.Name, e.Desc
}

func (s *Strings) Room(key string) (string, string) {
	e := s.Rooms[key]
	return e.Name, e.Desc
}

func (s *Strings) ItemStem() string {
	return s.Stems.Item
}

func (s *Strings) ContainerStem() string {
	return s.Stems.Container
}
