package sortfiles

import (
	"testing"

	"github.com/repomix-go/repomix-go/internal/model"
)

func TestByChurnAscendingStable(t *testing.T) {
	files := []model.ProcessedFile{
		{Path: "c.go"}, // absent -> 0
		{Path: "a.go"}, // 5
		{Path: "b.go"}, // 0, tiebreak after c.go
	}
	changes := map[string]int{"a.go": 5}

	ByChurn(files, changes)

	want := []string{"c.go", "b.go", "a.go"}
	for i, w := range want {
		if files[i].Path != w {
			t.Errorf("pos %d = %q, want %q (full: %+v)", i, files[i].Path, w, files)
		}
	}
}
