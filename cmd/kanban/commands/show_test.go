package commands_test

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"kanbanlists/cmd/kanban/commands"
)

type cardOut struct {
	ID   int    `json:"id" yaml:"id"`
	Text string `json:"text" yaml:"text"`
}

type listOut struct {
	ID    int       `json:"id" yaml:"id"`
	Name  string    `json:"name" yaml:"name"`
	Cards []cardOut `json:"cards" yaml:"cards"`
}

var wantLists = []listOut{
	{ID: 1, Name: "リスト１", Cards: []cardOut{{1, "タスク１"}, {2, "タスク2"}}},
	{ID: 2, Name: "リスト２", Cards: []cardOut{{3, "タスク3"}, {4, "タスク４"}}},
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := commands.NewRootCmd()
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func checkLists(t *testing.T, got []listOut) {
	t.Helper()
	if len(got) != len(wantLists) {
		t.Fatalf("got %d lists, want %d", len(got), len(wantLists))
	}
	for i := range wantLists {
		w, g := wantLists[i], got[i]
		if g.ID != w.ID || g.Name != w.Name || len(g.Cards) != len(w.Cards) {
			t.Fatalf("list %d = %+v, want %+v", i, g, w)
		}
		for j := range w.Cards {
			if g.Cards[j] != w.Cards[j] {
				t.Fatalf("list %d card %d = %+v, want %+v", i, j, g.Cards[j], w.Cards[j])
			}
		}
	}
}

func TestShow_DefaultYAML(t *testing.T) {
	out, err := run(t, "show")
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	var got []listOut
	if err := yaml.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode yaml: %v\n%s", err, out)
	}
	checkLists(t, got)
}

func TestShow_JSON(t *testing.T) {
	out, err := run(t, "show", "--format", "json")
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	var got []listOut
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode json: %v\n%s", err, out)
	}
	checkLists(t, got)
}

func TestShow_UnsupportedFormat(t *testing.T) {
	_, err := run(t, "show", "-f", "xml")
	if err == nil {
		t.Fatal("expected error for xml format")
	}
	if !strings.Contains(err.Error(), `unsupported format "xml"`) {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestShow_RejectsArgs(t *testing.T) {
	if _, err := run(t, "show", "extra"); err == nil {
		t.Fatal("expected error for positional argument")
	}
}
