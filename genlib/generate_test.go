package genlib

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const template = `// Package box holds one value.
package box

import (
	"fmt"

	"github.com/joeshaw/linkedlist/generic"
)

// Box holds one value.
type Box struct {
	V generic.T
	K generic.U
}

func (b *Box) Set(v generic.T) { b.V = v }

func (b *Box) String() string { return fmt.Sprint(generic.T(b.V)) }
`

func writeTemplate(t *testing.T, name, src string) (string, func()) {
	dir, err := ioutil.TempDir("", "genlib")
	if err != nil {
		t.Fatal(err)
	}
	fn := filepath.Join(dir, name)
	if err := ioutil.WriteFile(fn, []byte(src), 0644); err != nil {
		os.RemoveAll(dir)
		t.Fatal(err)
	}
	return fn, func() { os.RemoveAll(dir) }
}

func TestGenerate(t *testing.T) {
	fn, cleanup := writeTemplate(t, "box.go", template)
	defer cleanup()

	buf, err := Generate(fn, "intbox", "int", "string")
	if err != nil {
		t.Fatal(err)
	}
	out := string(buf)

	for _, want := range []string{
		"// Code generated by gengen from box.go; DO NOT EDIT.\n",
		"// Package intbox holds one value.\npackage intbox\n",
		"V int\n",
		"K string\n",
		"func (b *Box) Set(v int)",
		"fmt.Sprint(int(b.V))",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "generic") {
		t.Errorf("output still references generic:\n%s", out)
	}
	if !strings.Contains(out, `"fmt"`) {
		t.Errorf("unrelated import dropped:\n%s", out)
	}
}

func TestGenerateKeepsPackageName(t *testing.T) {
	fn, cleanup := writeTemplate(t, "box.go", template)
	defer cleanup()

	buf, err := Generate(fn, "", "int", "string")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(buf), "\npackage box\n") {
		t.Errorf("package clause changed:\n%s", buf)
	}
}

func TestGenerateTestPackage(t *testing.T) {
	fn, cleanup := writeTemplate(t, "box_test.go", "package box_test\n\nfunc f() {}\n")
	defer cleanup()

	buf, err := Generate(fn, "intbox", "int")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(buf), "\npackage intbox_test\n") {
		t.Errorf("external test package not renamed:\n%s", buf)
	}
}

func TestGenerateMissingType(t *testing.T) {
	fn, cleanup := writeTemplate(t, "box.go", template)
	defer cleanup()

	_, err := Generate(fn, "intbox", "int")
	if err == nil {
		t.Fatal("expected an error for missing generic.U replacement")
	}
	if !strings.Contains(err.Error(), "generic.U") {
		t.Errorf("error %q does not name generic.U", err)
	}
}

func TestGenerateParseError(t *testing.T) {
	fn, cleanup := writeTemplate(t, "bad.go", "package bad\nfunc {")
	defer cleanup()

	if _, err := Generate(fn, "", "int"); err == nil {
		t.Fatal("expected a parse error")
	}
}
