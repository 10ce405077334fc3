package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Raw is the opaque structured form of a document, as produced by decoding
// its YAML representation. Persistence collaborators exchange documents in
// this shape.
type Raw = map[string]any

// Load decodes a raw document and validates it. It requires non-empty
// project, env and region, and unique names within every named collection.
func Load(raw Raw) (*Document, error) {
	data, err := yaml.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("encode raw document: %w", err)
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}

	if err := validate(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Serialize converts a document back to its raw form. Load(Serialize(d))
// reproduces an equivalent document.
func Serialize(doc *Document) (Raw, error) {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}

	var raw Raw
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode serialized document: %w", err)
	}
	return raw, nil
}

func validate(doc *Document) error {
	if doc.Project == "" {
		return MissingRequiredField("project")
	}
	if doc.Env == "" {
		return MissingRequiredField("env")
	}
	if doc.Region == "" {
		return MissingRequiredField("region")
	}

	collections := []struct {
		name  string
		names []string
	}{
		{"services", collectionNames(doc.Services, func(s Service) string { return s.Name })},
		{"scheduled_tasks", collectionNames(doc.ScheduledTasks, func(t ScheduledTask) string { return t.Name })},
		{"event_processor_tasks", collectionNames(doc.EventProcessorTasks, func(t EventProcessorTask) string { return t.Name })},
		{"buckets", collectionNames(doc.Buckets, func(b Bucket) string { return b.Name })},
		{"amplify_apps", collectionNames(doc.AmplifyApps, func(a AmplifyApp) string { return a.Name })},
	}

	for _, c := range collections {
		seen := make(map[string]struct{}, len(c.names))
		for _, n := range c.names {
			if _, ok := seen[n]; ok {
				return DuplicateName(c.name, n)
			}
			seen[n] = struct{}{}
		}
	}
	return nil
}

func collectionNames[T any](items []T, name func(T) string) []string {
	names := make([]string, len(items))
	for i, it := range items {
		names[i] = name(it)
	}
	return names
}
