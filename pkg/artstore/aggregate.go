package artstore

import (
	"os"
	"path/filepath"
	"strings"
)

// Preview is the minimal artifact summary used in listings.
type Preview struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Thumbnail   string `json:"thumbnail"`
}

// Preview builds the artifact's listing summary. It never fails: missing or
// malformed metadata degrades to empty fields, and a missing thumbnail is an
// empty string.
func (s *Store) Preview(id string) Preview {
	doc := s.Metadata(id)
	return Preview{
		ID:          id,
		Title:       stringField(doc, "title"),
		Description: stringField(doc, "description"),
		Date:        stringField(doc, "date"),
		Thumbnail:   s.previewThumbnail(id),
	}
}

// previewThumbnail prefers the first RTI set carrying a thumbnail (each set
// applies its own fallback chain), then the first flat image, then nothing.
// "First" follows directory enumeration order, which is not guaranteed
// stable across filesystems.
func (s *Store) previewThumbnail(id string) string {
	for _, set := range s.ListRTIs(id) {
		if set.Thumbnail != "" {
			return set.Thumbnail
		}
	}
	if images := s.Images(id); len(images) > 0 {
		return images[0]
	}
	return ""
}

// Images returns client-facing URLs for the artifact's flat image files in
// directory enumeration order. Non-image files and subdirectories are
// skipped; a missing images/ directory yields an empty collection.
func (s *Store) Images(id string) []string {
	dir, err := s.paths.Images(id)
	if err != nil {
		return []string{}
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return []string{}
	}
	urls := []string{}
	for _, entry := range entries {
		if entry.IsDir() || !isImageFile(entry.Name()) {
			continue
		}
		urls = append(urls, s.FileURL(filepath.Join(dir, entry.Name())))
	}
	return urls
}

func isImageFile(name string) bool {
	lower := strings.ToLower(name)
	for _, ext := range []string{".jpg", ".jpeg", ".png", ".gif"} {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// Detail returns the full aggregated view of one artifact: the metadata
// document spread into the result verbatim (custom keys included), with the
// computed images and relightableMedia collections overriding any same-named
// metadata keys. Fails with CodeNotFound when the artifact directory is
// absent.
func (s *Store) Detail(id string) (map[string]any, error) {
	if !s.Exists(id) {
		return nil, Newf(CodeNotFound, "artifact %s not found", id)
	}
	out := map[string]any{}
	for k, v := range s.Metadata(id) {
		out[k] = v
	}
	out["id"] = id
	out["images"] = s.Images(id)
	out["relightableMedia"] = s.ListRTIs(id)
	return out, nil
}

// List enumerates all artifact previews. Entries that are not directories,
// have no metadata document, or whose metadata fails to parse are silently
// skipped so a single corrupt artifact never breaks the whole listing.
func (s *Store) List() []Preview {
	entries, err := os.ReadDir(s.paths.Root)
	if err != nil {
		return []Preview{}
	}
	previews := []Preview{}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		id := entry.Name()
		if _, err := s.loadMetadata(id); err != nil {
			continue
		}
		previews = append(previews, s.Preview(id))
	}
	return previews
}

func stringField(doc map[string]any, key string) string {
	if v, ok := doc[key].(string); ok {
		return v
	}
	return ""
}
