// Package settings reads and writes editor settings.json files. Files may
// contain comments and trailing commas, and comments survive an update.
package settings

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/tailscale/hujson"

	"github.com/balkashynov/colorspace/internal/palette"
)

// FileStore is a palette.ConfigStore over a workspace's .vscode/settings.json and
// the user's global settings.json.
type FileStore struct {
	mu        sync.Mutex
	workspace string
	user      string
}

// NewFileStore targets the workspace rooted at workspaceDir. An empty userPath
// selects the editor's default user settings location.
func NewFileStore(workspaceDir, userPath string) *FileStore {
	if userPath == "" {
		userPath = DefaultUserPath()
	}
	return &FileStore{
		workspace: WorkspacePath(workspaceDir),
		user:      userPath,
	}
}

// WorkspacePath is where the editor keeps per-workspace settings.
func WorkspacePath(workspaceDir string) string {
	return filepath.Join(workspaceDir, ".vscode", "settings.json")
}

// DefaultUserPath is the editor's user settings file under the OS config dir.
func DefaultUserPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "Code", "User", "settings.json")
}

// Path returns the file backing scope.
func (s *FileStore) Path(scope palette.Scope) string {
	if scope == palette.ScopeUser {
		return s.user
	}
	return s.workspace
}

// Get returns the object stored under key, or an empty map when the file or key
// is missing. A key holding a non-object value is an error.
func (s *FileStore) Get(ctx context.Context, scope palette.Scope, key string) (map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	path := s.Path(scope)
	raw, err := readFile(path)
	if err != nil {
		return nil, err
	}
	values, err := lookup(raw, key)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return values, nil
}

// Update replaces the object under key with values, leaving the rest of the
// file as it was. An empty values removes the key.
func (s *FileStore) Update(ctx context.Context, scope palette.Scope, key string, values map[string]any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	path := s.Path(scope)
	if path == "" {
		return errors.New("no settings path for " + scope.String() + " scope")
	}
	raw, err := readFile(path)
	if err != nil {
		return err
	}

	out, err := patch(raw, key, values)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return writeFileAtomic(path, out)
}

func readFile(path string) ([]byte, error) {
	if path == "" {
		return nil, nil
	}
	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}
	return raw, nil
}

func isBlank(raw []byte) bool {
	return len(bytes.TrimSpace(raw)) == 0
}

func lookup(raw []byte, key string) (map[string]any, error) {
	if isBlank(raw) {
		return map[string]any{}, nil
	}
	// Standardize rewrites its input in place.
	std, err := hujson.Standardize(bytes.Clone(raw))
	if err != nil {
		return nil, fmt.Errorf("parse settings: %w", err)
	}

	var top map[string]json.RawMessage
	if err := json.Unmarshal(std, &top); err != nil {
		return nil, fmt.Errorf("parse settings: %w", err)
	}
	member, ok := top[key]
	if !ok || string(member) == "null" {
		return map[string]any{}, nil
	}

	values := map[string]any{}
	dec := json.NewDecoder(bytes.NewReader(member))
	dec.UseNumber()
	if err := dec.Decode(&values); err != nil {
		return nil, fmt.Errorf("%s is not an object: %w", key, err)
	}
	return values, nil
}

// patch applies an RFC 6902 add or remove for key to the parsed file. Only the
// member under key is rewritten; comments, spacing and unrelated members keep
// their original bytes.
func patch(raw []byte, key string, values map[string]any) ([]byte, error) {
	fresh := isBlank(raw)
	if fresh {
		raw = []byte("{}")
	}
	doc, err := hujson.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse settings: %w", err)
	}

	var ops []map[string]any
	pointer := "/" + escapePointer(key)
	present := doc.Find(pointer) != nil
	switch {
	case len(values) > 0:
		ops = append(ops, map[string]any{"op": "add", "path": pointer, "value": values})
	case present:
		ops = append(ops, map[string]any{"op": "remove", "path": pointer})
	default:
		return raw, nil
	}

	body, err := json.Marshal(ops)
	if err != nil {
		return nil, fmt.Errorf("encode settings patch: %w", err)
	}
	if err := doc.Patch(body); err != nil {
		return nil, fmt.Errorf("patch settings: %w", err)
	}
	switch {
	case fresh:
		doc.Format()
	case !present && len(values) > 0:
		indentAppended(doc)
	}
	return doc.Pack(), nil
}

// indentAppended puts a newly appended top-level member on its own line,
// indented like the member before it.
func indentAppended(doc hujson.Value) {
	obj, ok := doc.Value.(*hujson.Object)
	if !ok || len(obj.Members) < 2 {
		return
	}
	prev := obj.Members[len(obj.Members)-2].Name.BeforeExtra
	i := bytes.LastIndexByte(prev, '\n')
	if i < 0 {
		return
	}
	obj.Members[len(obj.Members)-1].Name.BeforeExtra = hujson.Extra(bytes.Clone(prev[i:]))
}

var pointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

func escapePointer(key string) string {
	return pointerEscaper.Replace(key)
}

func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create settings dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".settings-*.json")
	if err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write settings: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	if info, err := os.Stat(path); err == nil {
		_ = os.Chmod(tmp.Name(), info.Mode().Perm())
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}
