package main

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"github.com/jwebster45206/zarya/pkg/locale"
	"github.com/jwebster45206/zarya/pkg/world"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <strings.yaml>\n", os.Args[0])
		os.Exit(1)
	}

	filename := os.Args[1]
	validator := &StringsValidator{}

	if err := validator.validateFile(filename); err != nil {
		fmt.Fprintf(os.Stderr, "Validation failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Strings file is valid!")
}

// StringsValidator checks a localization file beyond what loading it checks: names the command
// grammar can actually match, and a station that builds from it.
type StringsValidator struct {
	errors []string
}

func (v *StringsValidator) validateFile(filename string) error {
	fmt.Printf("Validating %s...\n", filename)

	baseName := filepath.Base(filename)
	if !strings.HasSuffix(baseName, ".yaml") {
		return fmt.Errorf("strings file must have .yaml extension: %s", baseName)
	}

	nameWithoutExt := strings.TrimSuffix(baseName, ".yaml")
	if !isValidLanguageFilename(nameWithoutExt) {
		return fmt.Errorf("strings filename '%s' must be a lowercase language tag (e.g., en.yaml, pt-br.yaml)", baseName)
	}

	strs, err := locale.LoadFile(filename)
	if err != nil {
		return fmt.Errorf("file %s failed to load: %w", filename, err)
	}

	v.errors = nil
	v.validateStrings(strs, nameWithoutExt)

	if len(v.errors) > 0 {
		return fmt.Errorf("validation errors in %s:\n%s", filename, strings.Join(v.errors, "\n"))
	}

	return nil
}

func (v *StringsValidator) validateStrings(strs *locale.Strings, fileLanguage string) {
	if !strings.EqualFold(strs.Language, fileLanguage) {
		v.addError(fmt.Sprintf("language '%s' does not match filename '%s'", strs.Language, fileLanguage))
	}

	// Player input is case-folded before matching, so names must already be lower case.
	for key, e := range strs.Items {
		v.validateName(strs, "item", key, e.Name)
	}
	for key, e := range strs.Containers {
		v.validateName(strs, "container", key, e.Name)
	}

	seen := map[string]string{}
	for key, e := range strs.Items {
		if other, ok := seen[e.Name]; ok {
			v.addError(fmt.Sprintf("items '%s' and '%s' share the name '%s'", key, other, e.Name))
		}
		seen[e.Name] = key
	}

	for word := range strs.FilterWords() {
		if strings.ToLower(word) != word {
			v.addError(fmt.Sprintf("filter word '%s' should be lower case", word))
		}
	}

	for _, name := range strs.List(locale.ListContacts) {
		v.validateName(strs, "contact", name, name)
	}
	if slices.Contains(strs.List(locale.ListContacts), "cancel") {
		v.addError("contact 'cancel' can never be chosen")
	}

	if err := world.NewStation(strs).Validate(); err != nil {
		v.addError(fmt.Sprintf("station does not build: %v", err))
	}
}

func (v *StringsValidator) validateName(strs *locale.Strings, kind, key, name string) {
	if strings.TrimSpace(name) == "" {
		v.addError(fmt.Sprintf("%s '%s' has an empty name", kind, key))
		return
	}
	if strs.Lower(name) != name {
		v.addError(fmt.Sprintf("%s '%s' name '%s' should be lower case", kind, key, name))
	}
}

func (v *StringsValidator) addError(msg string) {
	v.errors = append(v.errors, "  - "+msg)
}

var validFilenameRegex = regexp.MustCompile(`^[a-z]{2,3}(-[a-z0-9]{2,8})*$`)

func isValidLanguageFilename(name string) bool {
	return validFilenameRegex.MatchString(name)
}
