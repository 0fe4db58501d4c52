package registry

import (
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

type tagFile struct {
	Values []string `json:"values"`
}

// loadTags walks generated/data/<ns>/tags/<rest>/<tag>.json, grouping tag
// declarations by the registry they tag ("<ns>:<tag_registry>", where
// tag_registry may span several path segments, e.g. "worldgen/biome") and
// resolving member identifiers to numeric ids. Block tags resolve via each
// member's default block state id rather than a block registry index,
// since blocks are not one of the loaded data-driven registries.
func loadTags(dataRoot string, registries map[string]*Registry, blocks *BlockStateTable) ([]TagGroup, error) {
	groups := make(map[string]*TagGroup)
	var order []string

	namespaces, err := os.ReadDir(dataRoot)
	if err != nil {
		return nil, &ResourceError{Path: dataRoot, Err: err}
	}

	for _, nsEntry := range namespaces {
		if !nsEntry.IsDir() {
			continue
		}
		namespace := nsEntry.Name()
		tagsRoot := filepath.Join(dataRoot, namespace, "tags")
		if info, err := os.Stat(tagsRoot); err != nil || !info.IsDir() {
			continue
		}

		err = filepath.WalkDir(tagsRoot, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || filepath.Ext(path) != ".json" {
				return nil
			}

			rel, err := filepath.Rel(tagsRoot, path)
			if err != nil {
				return err
			}
			rel = filepath.ToSlash(rel)
			parts := strings.Split(rel, "/")
			if len(parts) < 2 {
				// A file directly under tags/ names no registry.
				return nil
			}
			// The tag registry is the longest leading path that names a
			// loaded registry (e.g. "worldgen/biome"), else the first segment.
			split := 1
			for k := len(parts) - 1; k > 1; k-- {
				if _, ok := registries[namespace+":"+strings.Join(parts[:k], "/")]; ok {
					split = k
					break
				}
			}
			tagRegistry := strings.Join(parts[:split], "/")
			registryID := namespace + ":" + tagRegistry
			tagPath := strings.TrimSuffix(strings.Join(parts[split:], "/"), ".json")
			tagName := namespace + ":" + tagPath

			f, err := os.Open(path)
			if err != nil {
				return err
			}
			defer f.Close()

			var parsed tagFile
			if err := json.NewDecoder(f).Decode(&parsed); err != nil {
				return &ResourceError{Path: path, Err: err}
			}

			var members []int32
			for _, memberID := range parsed.Values {
				id, ok := resolveTagMember(registryID, memberID, registries, blocks)
				if !ok {
					continue
				}
				members = append(members, id)
			}

			group, ok := groups[registryID]
			if !ok {
				group = &TagGroup{RegistryID: registryID}
				groups[registryID] = group
				order = append(order, registryID)
			}
			group.Tags = append(group.Tags, Tag{Name: tagName, Entries: members})
			return nil
		})
		if err != nil {
			return nil, &ResourceError{Path: tagsRoot, Err: err}
		}
	}

	out := make([]TagGroup, 0, len(order))
	for _, id := range order {
		out = append(out, *groups[id])
	}
	return out, nil
}

func resolveTagMember(registryID, memberID string, registries map[string]*Registry, blocks *BlockStateTable) (int32, bool) {
	if registryID == "minecraft:block" {
		return blocks.DefaultStateID(memberID), true
	}
	reg, ok := registries[registryID]
	if !ok {
		return 0, false
	}
	idx := reg.IndexOf(memberID)
	if idx < 0 {
		return 0, false
	}
	return int32(idx), true
}
