package config

// ApplyPartialUpdate merges a partial raw document into doc and returns the
// result as a new document. The input document is never mutated.
//
// Merge semantics:
//   - Scalars present in the patch overwrite the document value.
//   - Singleton objects merge field by field; a patch supplying one
//     sub-field of workload leaves its sibling fields intact. Nested maps
//     merge recursively.
//   - Named collections upsert by name: a patch array is the complete
//     replacement set the caller decided to apply. Elements matching an
//     existing name deep-merge into that element, unseen names append in
//     patch order, and existing elements absent from the patch survive
//     untouched.
//   - Arrays that are not name-keyed collections replace wholesale.
//
// The merged document is re-validated; the same ValidationError kinds as
// Load apply.
func ApplyPartialUpdate(doc *Document, patch Raw) (*Document, error) {
	if err := checkPatchCollections(patch); err != nil {
		return nil, err
	}
	base, err := Serialize(doc)
	if err != nil {
		return nil, err
	}
	return Load(mergeMaps(base, patch))
}

// checkPatchCollections rejects patch arrays that carry the same name twice.
// Upsert-by-name would silently collapse such elements otherwise.
func checkPatchCollections(patch map[string]any) error {
	for key, v := range patch {
		switch val := v.(type) {
		case map[string]any:
			if err := checkPatchCollections(val); err != nil {
				return err
			}
		case []any:
			if !isNamedCollection(val) {
				continue
			}
			seen := make(map[string]struct{}, len(val))
			for _, it := range val {
				m := it.(map[string]any)
				name := m["name"].(string)
				if _, ok := seen[name]; ok {
					return DuplicateName(key, name)
				}
				seen[name] = struct{}{}
				if err := checkPatchCollections(m); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func mergeMaps(base, patch map[string]any) map[string]any {
	out := make(map[string]any, len(base)+len(patch))
	for k, v := range base {
		out[k] = v
	}
	for k, pv := range patch {
		bv, ok := out[k]
		if !ok {
			out[k] = pv
			continue
		}
		out[k] = mergeValue(bv, pv)
	}
	return out
}

func mergeValue(base, patch any) any {
	switch p := patch.(type) {
	case map[string]any:
		if b, ok := base.(map[string]any); ok {
			return mergeMaps(b, p)
		}
		return p
	case []any:
		if b, ok := base.([]any); ok && isNamedCollection(b) && isNamedCollection(p) {
			return upsertByName(b, p)
		}
		return p
	default:
		return patch
	}
}

// isNamedCollection reports whether every element is a map carrying a
// non-empty string name. Only such arrays get upsert semantics.
func isNamedCollection(items []any) bool {
	for _, it := range items {
		m, ok := it.(map[string]any)
		if !ok {
			return false
		}
		name, ok := m["name"].(string)
		if !ok || name == "" {
			return false
		}
	}
	return true
}

func upsertByName(base, patch []any) []any {
	out := make([]any, len(base))
	copy(out, base)

	index := make(map[string]int, len(out))
	for i, it := range out {
		name := it.(map[string]any)["name"].(string)
		index[name] = i
	}

	for _, it := range patch {
		pm := it.(map[string]any)
		name := pm["name"].(string)
		if i, ok := index[name]; ok {
			out[i] = mergeMaps(out[i].(map[string]any), pm)
			continue
		}
		index[name] = len(out)
		out = append(out, pm)
	}
	return out
}
