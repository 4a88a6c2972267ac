package validator

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	acerrors "github.com/provstack/artifactcheck/pkg/errors"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create parent dirs: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	return path
}

func TestFileValidate(t *testing.T) {
	dir := t.TempDir()
	file := writeFile(t, dir, "artifact", "payload")
	missing := filepath.Join(dir, "absent")

	tests := []struct {
		name     string
		v        *File
		path     string
		wantCode string
	}{
		{"existing file passes", &File{Required: true}, file, ""},
		{"missing optional passes", &File{}, missing, ""},
		{"missing required fails", &File{Required: true}, missing, acerrors.ErrCodePathMissing},
		{"directory fails regardless of required", &File{}, dir, acerrors.ErrCodeWrongPathKind},
		{"directory fails when required", &File{Required: true}, dir, acerrors.ErrCodeWrongPathKind},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.v.Validate(context.Background(), tt.path)
			if got := acerrors.CodeOf(err); got != tt.wantCode {
				t.Fatalf("Validate() code = %q (err %v), want %q", got, err, tt.wantCode)
			}
		})
	}
}

func TestFileValidateDelegatesToContent(t *testing.T) {
	dir := t.TempDir()
	file := writeFile(t, dir, "RELEASE.INFO", "NAME: x\n")

	fail := acerrors.WithPath(acerrors.ErrCodeContentInvalid, file, "forced")
	v := &File{Required: true, Content: stubValidator{err: fail}}

	err := v.Validate(context.Background(), file)
	if err != fail {
		t.Fatalf("content failure not propagated unchanged: %v", err)
	}
}

func TestFileValidateSkipsContentWhenMissing(t *testing.T) {
	v := &File{Content: stubValidator{err: acerrors.New(acerrors.ErrCodeContentInvalid, "should not run")}}

	if err := v.Validate(context.Background(), filepath.Join(t.TempDir(), "absent")); err != nil {
		t.Fatalf("missing optional file must skip content validation, got %v", err)
	}
}

func TestDirValidate(t *testing.T) {
	dir := t.TempDir()
	file := writeFile(t, dir, "artifact", "payload")
	missing := filepath.Join(dir, "absent")

	tests := []struct {
		name     string
		v        *Dir
		path     string
		wantCode string
	}{
		{"existing dir passes", &Dir{Required: true}, dir, ""},
		{"missing optional passes", &Dir{}, missing, ""},
		{"missing required fails", &Dir{Required: true}, missing, acerrors.ErrCodePathMissing},
		{"regular file fails regardless of required", &Dir{}, file, acerrors.ErrCodeWrongPathKind},
		{"regular file fails when required", &Dir{Required: true}, file, acerrors.ErrCodeWrongPathKind},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.v.Validate(context.Background(), tt.path)
			if got := acerrors.CodeOf(err); got != tt.wantCode {
				t.Fatalf("Validate() code = %q (err %v), want %q", got, err, tt.wantCode)
			}
		})
	}
}

func TestDirValidateChildren(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "repomd.xml", "<repomd/>")

	v := &Dir{
		Required: true,
		Files: NewScheme().
			Add("repomd.xml", &File{Required: true}).
			Add("optional.xml", &File{}),
	}
	if err := v.Validate(context.Background(), dir); err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
}

func TestDirValidateFailFast(t *testing.T) {
	dir := t.TempDir()

	order := &recorder{}
	v := &Dir{
		Required: true,
		Files: NewScheme().
			Add("a", order.failing("a")).
			Add("b", order.passing("b")),
	}

	err := v.Validate(context.Background(), dir)
	if acerrors.CodeOf(err) != acerrors.ErrCodePathMissing {
		t.Fatalf("expected first child failure, got %v", err)
	}
	if len(order.visited) != 1 || order.visited[0] != "a" {
		t.Fatalf("expected fail-fast at first child, visited %v", order.visited)
	}
}

func TestDirValidateChildFailureCarriesSubPath(t *testing.T) {
	dir := t.TempDir()

	v := &Dir{
		Required: true,
		Files:    NewScheme().Add("repomd.xml", &File{Required: true}),
	}

	err := v.Validate(context.Background(), dir)
	if acerrors.CodeOf(err) != acerrors.ErrCodePathMissing {
		t.Fatalf("expected PATH_MISSING, got %v", err)
	}
	if want := filepath.Join(dir, "repomd.xml"); acerrors.PathOf(err) != want {
		t.Fatalf("failure path = %q, want %q", acerrors.PathOf(err), want)
	}
}

func TestValidatePathNestedUnderFile(t *testing.T) {
	// A declared path under a regular file stats with ENOTDIR; the scheme
	// treats it as absent, not as an I/O problem.
	dir := t.TempDir()
	file := writeFile(t, dir, "artifact", "payload")
	nested := filepath.Join(file, "child")

	tests := []struct {
		name     string
		v        PathValidator
		wantCode string
	}{
		{"optional file passes", &File{}, ""},
		{"required file fails as missing", &File{Required: true}, acerrors.ErrCodePathMissing},
		{"optional dir passes", &Dir{}, ""},
		{"required dir fails as missing", &Dir{Required: true}, acerrors.ErrCodePathMissing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.v.Validate(context.Background(), nested)
			if got := acerrors.CodeOf(err); got != tt.wantCode {
				t.Fatalf("Validate() code = %q (err %v), want %q", got, err, tt.wantCode)
			}
		})
	}
}

func TestValidateUnreadableParentIsIOFailure(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}

	dir := t.TempDir()
	sealed := filepath.Join(dir, "sealed")
	writeFile(t, sealed, "artifact", "payload")
	if err := os.Chmod(sealed, 0o000); err != nil {
		t.Fatalf("failed to seal parent dir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chmod(sealed, 0o755); err != nil {
			t.Errorf("failed to unseal parent dir: %v", err)
		}
	})

	tests := []struct {
		name string
		v    PathValidator
	}{
		{"file", &File{Required: true}},
		{"dir", &Dir{Required: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.v.Validate(context.Background(), filepath.Join(sealed, "artifact"))
			got := acerrors.CodeOf(err)
			if got == acerrors.ErrCodePathMissing {
				t.Fatalf("permission error conflated with a missing path: %v", err)
			}
			if got != acerrors.ErrCodeIOFailure {
				t.Fatalf("Validate() code = %q (err %v), want %q", got, err, acerrors.ErrCodeIOFailure)
			}
		})
	}
}

func TestSchemeValidatorLeavesRootUnchecked(t *testing.T) {
	// The root itself carries no required flag; only declared children are
	// checked, even under a root that does not exist.
	missingRoot := filepath.Join(t.TempDir(), "absent")

	v := &SchemeValidator{Scheme: NewScheme().Add("artifact", &File{})}
	if err := v.Validate(context.Background(), missingRoot); err != nil {
		t.Fatalf("Validate() error: %v", err)
	}

	required := &SchemeValidator{Scheme: NewScheme().Add("artifact", &File{Required: true})}
	err := required.Validate(context.Background(), missingRoot)
	if acerrors.CodeOf(err) != acerrors.ErrCodePathMissing {
		t.Fatalf("expected child PATH_MISSING, got %v", err)
	}
}

func TestSchemeValidateOrder(t *testing.T) {
	dir := t.TempDir()

	order := &recorder{}
	s := NewScheme().
		Add("first", order.passing("first")).
		Add("second", order.passing("second")).
		Add("third", order.passing("third"))

	v := &SchemeValidator{Scheme: s}
	if err := v.Validate(context.Background(), dir); err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	want := []string{"first", "second", "third"}
	for i, name := range want {
		if order.visited[i] != name {
			t.Fatalf("visit order %v, want %v", order.visited, want)
		}
	}
}

func TestSchemeValidateCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	v := &Dir{Files: NewScheme().Add("a", &File{})}
	err := v.Validate(ctx, t.TempDir())
	if err != context.Canceled {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

// stubValidator returns a fixed result, for delegation tests.
type stubValidator struct {
	err error
}

func (s stubValidator) Validate(context.Context, string) error {
	return s.err
}

// recorder tracks the order children validate in.
type recorder struct {
	visited []string
}

type recordedValidator struct {
	r    *recorder
	name string
	err  error
}

func (v *recordedValidator) Validate(context.Context, string) error {
	v.r.visited = append(v.r.visited, v.name)
	return v.err
}

func (r *recorder) passing(name string) PathValidator {
	return &recordedValidator{r: r, name: name}
}

func (r *recorder) failing(name string) PathValidator {
	return &recordedValidator{
		r:    r,
		name: name,
		err:  acerrors.New(acerrors.ErrCodePathMissing, "forced failure"),
	}
}
