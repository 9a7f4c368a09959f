package ingestion

import (
	"reflect"
	"strings"
	"unicode"

	"github.com/mitchellh/mapstructure"

	"github.com/jonathan/job-fit-scorer/internal/skills"
	"github.com/jonathan/job-fit-scorer/internal/types"
)

// DecodeResume converts a loosely-shaped persistence record into a validated Resume.
// Keys may be snake_case or camelCase; a skills list is joined into the skills string,
// a comma-separated technologies string is split, and numeric dates become strings.
func DecodeResume(record map[string]any) (*types.Resume, error) {
	var resume types.Resume
	if err := decode("resume", record, &resume); err != nil {
		return nil, err
	}
	if err := fromValidator("resume", resume.Validate()); err != nil {
		return nil, err
	}
	return &resume, nil
}

// DecodeJob converts a loosely-shaped job record into validated JobDetails.
// HTML descriptions are reduced to text and required skills are normalized.
func DecodeJob(record map[string]any) (*types.JobDetails, error) {
	var job types.JobDetails
	if err := decode("job", record, &job); err != nil {
		return nil, err
	}

	description, err := NormalizeDescription(job.JobDescription)
	if err != nil {
		return nil, &DecodeError{Record: "job", Cause: err}
	}
	job.JobDescription = description
	job.JobTitle = strings.TrimSpace(job.JobTitle)
	job.Company = strings.TrimSpace(job.Company)
	if len(job.RequiredSkills) > 0 {
		job.RequiredSkills = skills.NormalizeSkills(job.RequiredSkills)
	}

	if err := fromValidator("job", job.Validate()); err != nil {
		return nil, err
	}
	return &job, nil
}

func decode(record string, input map[string]any, out any) error {
	if input == nil {
		return &DecodeError{Record: record, Cause: errNilRecord}
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.ComposeDecodeHookFunc(joinListToString, splitStringToList),
		WeaklyTypedInput: true,
		TagName:          "mapstructure",
		Result:           out,
	})
	if err != nil {
		return &DecodeError{Record: record, Cause: err}
	}
	if err := decoder.Decode(snakeKeys(input)); err != nil {
		return &DecodeError{Record: record, Cause: err}
	}
	return nil
}

// joinListToString turns a list of values into a comma-separated string
func joinListToString(from, to reflect.Type, data any) (any, error) {
	if to.Kind() != reflect.String || from.Kind() != reflect.Slice {
		return data, nil
	}
	items, ok := data.([]any)
	if !ok {
		if ss, isStrings := data.([]string); isStrings {
			return strings.Join(ss, ", "), nil
		}
		return data, nil
	}
	parts := make([]string, 0, len(items))
	for _, it := range items {
		if s, isString := it.(string); isString && strings.TrimSpace(s) != "" {
			parts = append(parts, strings.TrimSpace(s))
		}
	}
	return strings.Join(parts, ", "), nil
}

// splitStringToList splits a delimited string when a string slice is expected
func splitStringToList(from, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || to.Kind() != reflect.Slice || to.Elem().Kind() != reflect.String {
		return data, nil
	}
	return skills.ParseSkillList(data.(string)), nil
}

// snakeKeys rewrites camelCase map keys to snake_case, recursively
func snakeKeys(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[toSnake(k)] = snakeKeys(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = snakeKeys(val)
		}
		return out
	default:
		return v
	}
}

func toSnake(s string) string {
	var b strings.Builder
	runes := []rune(s)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			if i > 0 && runes[i-1] != '_' && !unicode.IsUpper(runes[i-1]) {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
