package utils

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
)

const (
	environmentAssignmentSeparatorConstant = "="
	environmentListSeparatorConstant       = ","
	invalidAssignmentTemplateConstant      = "invalid environment assignment %q: expected KEY=VALUE"
)

var environmentMapType = reflect.TypeOf(map[string]string{})

// ParseEnvironmentAssignments converts KEY=VALUE entries into a map. Later
// entries replace earlier ones for the same key. Values may contain '='.
func ParseEnvironmentAssignments(assignments []string) (map[string]string, error) {
	environmentVariables := make(map[string]string, len(assignments))
	for _, assignment := range assignments {
		environmentKey, environmentValue, separatorFound := strings.Cut(assignment, environmentAssignmentSeparatorConstant)
		trimmedKey := strings.TrimSpace(environmentKey)
		if !separatorFound || len(trimmedKey) == 0 {
			return nil, fmt.Errorf(invalidAssignmentTemplateConstant, assignment)
		}
		environmentVariables[trimmedKey] = environmentValue
	}
	return environmentVariables, nil
}

// ParseEnvironmentList splits a comma separated KEY=VALUE list. Blank entries
// are skipped.
func ParseEnvironmentList(rawList string) (map[string]string, error) {
	assignments := make([]string, 0)
	for _, entry := range strings.Split(rawList, environmentListSeparatorConstant) {
		trimmedEntry := strings.TrimSpace(entry)
		if len(trimmedEntry) == 0 {
			continue
		}
		assignments = append(assignments, trimmedEntry)
	}
	return ParseEnvironmentAssignments(assignments)
}

// StringToEnvironmentMapHookFunc decodes "KEY=VALUE,..." strings, lists of
// KEY=VALUE strings and mappings into map[string]string targets. Viper folds
// mapping keys to lower case, so mapping keys are upper-cased; use the list
// form for variables whose names are not upper case.
func StringToEnvironmentMapHookFunc() mapstructure.DecodeHookFuncType {
	return func(sourceType reflect.Type, targetType reflect.Type, data any) (any, error) {
		if targetType != environmentMapType {
			return data, nil
		}

		switch typedData := data.(type) {
		case string:
			return ParseEnvironmentList(typedData)
		case []string:
			return ParseEnvironmentAssignments(typedData)
		case []any:
			assignments := make([]string, 0, len(typedData))
			for _, element := range typedData {
				assignments = append(assignments, fmt.Sprint(element))
			}
			return ParseEnvironmentAssignments(assignments)
		case map[string]any:
			environmentVariables := make(map[string]string, len(typedData))
			for environmentKey, environmentValue := range typedData {
				environmentVariables[strings.ToUpper(environmentKey)] = fmt.Sprint(environmentValue)
			}
			return environmentVariables, nil
		default:
			return data, nil
		}
	}
}
