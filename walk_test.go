package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/NickyBoy89/ktsurface/decl"
	"github.com/NickyBoy89/ktsurface/parsing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var separator = strings.Repeat("=", 100) + "\n"

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return dir
}

func kotlinWalker(out *bytes.Buffer) *Walker {
	return &Walker{Parser: parsing.NewKotlinParser(), Extensions: []string{".kt"}, Out: out}
}

func TestWalkSingleClass(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"A.kt": "class A(val x: Int) {\n    fun f(): Int = 1\n}\n\nprivate fun hidden() {\n    println(\"no\")\n}\n",
	})

	var out bytes.Buffer
	require.NoError(t, kotlinWalker(&out).Walk(context.Background(), dir))

	path := filepath.Join(dir, "A.kt")
	expected := separator +
		"Declarations for " + path + "\n\n" +
		"class A(val x: Int) {\n\tfun f(): Int = 1\n}\n"
	assert.Equal(t, expected, out.String())
}

func TestWalkNoDeclarations(t *testing.T) {
	abs, err := filepath.Abs("testfiles/Empty.kt")
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, kotlinWalker(&out).Walk(context.Background(), "testfiles/Empty.kt"))

	assert.Equal(t, "No declarations found in "+abs+"\n", out.String())
}

func TestWalkFixture(t *testing.T) {
	abs, err := filepath.Abs("testfiles/Shapes.kt")
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, kotlinWalker(&out).Walk(context.Background(), "testfiles/Shapes.kt"))

	expected := separator +
		"Declarations for " + abs + "\n\n" +
		"interface Shape {\n" +
		"\tval name: String\n" +
		"\tfun area(): Double\n" +
		"\tfun describe(): String = \"$name with area ${area()}\"\n" +
		"}\n" +
		"abstract class Polygon(val sides: Int) : Shape {\n" +
		"\tfun perimeter(): Double\n" +
		"}\n" +
		"class Circle(private val radius: Double) : Shape {\n" +
		"\tcompanion object  {\n" +
		"\t\tfun unit(): Circle = Circle(1.0)\n" +
		"\t}\n" +
		"\toverride val name = \"circle\"\n" +
		"\tvar scale = 1.0\n        private set\n" +
		"\toverride fun area(): Double = PI * radius * radius\n" +
		"}\n" +
		"enum class Kind {\n" +
		"\tROUND\n" +
		"\tANGULAR\n" +
		"}\n" +
		"object Shapes {\n" +
		"\tfun all(): List<Shape>\n" +
		"}\n" +
		"val defaultShape: Shape = Circle(1.0)\n" +
		"val unitArea: Double\n    get() = PI\n"
	assert.Equal(t, expected, out.String())

	// Nothing from a function's block body makes it into the output
	assert.NotContains(t, out.String(), "require(sides")
	assert.NotContains(t, out.String(), "listOf(")
}

func TestWalkOrderAndExtensions(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"b/B.kt":     "fun b() = 2\n",
		"a.kt":       "fun a() = 1\n",
		"notes.txt":  "fun ignored() = 0\n",
		"Script.kts": "fun script() = 3\n",
	})

	var out bytes.Buffer
	require.NoError(t, kotlinWalker(&out).Walk(context.Background(), dir))

	output := out.String()
	assert.Equal(t, 2, strings.Count(output, separator))
	assert.Less(t, strings.Index(output, "fun a() = 1"), strings.Index(output, "fun b() = 2"))
	assert.NotContains(t, output, "ignored")
	assert.NotContains(t, output, "script")

	out.Reset()
	walker := kotlinWalker(&out)
	walker.Extensions = []string{"KTS"}
	require.NoError(t, walker.Walk(context.Background(), dir))
	assert.Contains(t, out.String(), "fun script() = 3\n")
	assert.NotContains(t, out.String(), "fun a()")
}

func TestWalkStopsOnParseError(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"a.kt": "class {{{ fun (",
		"b.kt": "fun b() = 2\n",
	})

	var out bytes.Buffer
	err := kotlinWalker(&out).Walk(context.Background(), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, parsing.ErrSyntax)
	assert.Empty(t, out.String())
}

func TestWalkMissingRoot(t *testing.T) {
	var out bytes.Buffer
	err := kotlinWalker(&out).Walk(context.Background(), filepath.Join(t.TempDir(), "missing"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

// stubParser returns the same declarations for every file
type stubParser struct {
	file  decl.File
	names []string
}

func (s *stubParser) Parse(ctx context.Context, source []byte, name string) (*decl.File, error) {
	s.names = append(s.names, name)
	file := s.file
	file.Name = name
	return &file, nil
}

func TestWalkWithStubParser(t *testing.T) {
	dir := writeFiles(t, map[string]string{"Stub.kt": "anything"})

	parser := &stubParser{file: decl.File{Declarations: []decl.Node{
		&decl.Property{Visibility: "private", Text: "private val x = 1"},
		&decl.Function{Name: "shown", Body: decl.FunctionBody{Kind: decl.BlockBody}},
	}}}

	var out bytes.Buffer
	walker := &Walker{Parser: parser, Extensions: []string{".kt"}, Out: &out}
	require.NoError(t, walker.Walk(context.Background(), dir))

	path := filepath.Join(dir, "Stub.kt")
	assert.Equal(t, []string{path}, parser.names)
	assert.Equal(t, separator+"Declarations for "+path+"\n\nfun shown()\n", out.String())
}

func TestNormalizeExtension(t *testing.T) {
	assert.Equal(t, ".kt", normalizeExtension("kt"))
	assert.Equal(t, ".kt", normalizeExtension(" .KT "))
	assert.Equal(t, "", normalizeExtension(""))
}

func TestCommandUsage(t *testing.T) {
	for _, args := range [][]string{{}, {"a", "b"}} {
		cmd := newRootCommand()
		var out, errOut bytes.Buffer
		cmd.SetOut(&out)
		cmd.SetErr(&errOut)
		cmd.SetArgs(args)

		require.NoError(t, cmd.Execute())
		assert.Contains(t, out.String()+errOut.String(), "Usage:")
		assert.NotContains(t, out.String(), "Declarations for")
	}
}

func TestCommandRun(t *testing.T) {
	dir := writeFiles(t, map[string]string{"Main.kt": "fun main() {\n    println(\"hi\")\n}\n"})

	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{dir})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, separator+"Declarations for "+filepath.Join(dir, "Main.kt")+"\n\nfun main()\n", out.String())
}
