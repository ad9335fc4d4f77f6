package catalog

import "fmt"

func knownSection(id string) bool {
	for _, s := range sections {
		if s.ID == id {
			return true
		}
	}
	return false
}

// Validate checks the internal consistency of the step catalog. It is run
// once at startup so a malformed descriptor fails fast instead of producing
// a broken questionnaire mid-session.
func Validate() error {
	seen := make(map[string]int, len(steps))
	for i, s := range steps {
		if s.ID == "" {
			return fmt.Errorf("step %d: empty id", i)
		}
		if prev, dup := seen[s.ID]; dup {
			return fmt.Errorf("step %q: duplicate id (positions %d and %d)", s.ID, prev, i)
		}
		seen[s.ID] = i

		if !knownSection(s.Section) {
			return fmt.Errorf("step %q: unknown section %q", s.ID, s.Section)
		}
		if s.Title == "" {
			return fmt.Errorf("step %q: empty title", s.ID)
		}
		if s.FormLine == "" {
			return fmt.Errorf("step %q: empty form line", s.ID)
		}

		switch s.FieldType {
		case FieldSelect, FieldRadio, FieldCheckboxes:
			if len(s.Options) == 0 {
				return fmt.Errorf("step %q: %s field has no options", s.ID, s.FieldType)
			}
			optSeen := make(map[string]bool, len(s.Options))
			for _, o := range s.Options {
				if o.Value == "" || o.Label == "" {
					return fmt.Errorf("step %q: option with empty value or label", s.ID)
				}
				if optSeen[o.Value] {
					return fmt.Errorf("step %q: duplicate option value %q", s.ID, o.Value)
				}
				optSeen[o.Value] = true
			}
		case FieldText, FieldDate, FieldCurrency, FieldNumber,
			FieldCompositeAddress, FieldCompositeCompanyAddress,
			FieldCCASchedule, FieldReview, FieldReviewT5:
			if len(s.Options) != 0 {
				return fmt.Errorf("step %q: %s field carries options", s.ID, s.FieldType)
			}
		default:
			return fmt.Errorf("step %q: unknown field type %q", s.ID, s.FieldType)
		}

		if s.Validate != nil && s.ValidationMessage == "" {
			return fmt.Errorf("step %q: validator without a validation message", s.ID)
		}
	}

	last := steps[len(steps)-1]
	if last.FieldType != FieldReview {
		return fmt.Errorf("last step %q: expected a review step", last.ID)
	}
	return nil
}
