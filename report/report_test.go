package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestRecordAndMessages(t *testing.T) {
	s := NewStore()
	s.Record(SetterGetter, "models.User", "Using setter method: SetName")
	s.Record(SetterGetter, "models.User", "Using getter method: GetName")
	s.Record(ToString, "models.User", "Method: String")

	assert.Equal(t, []string{
		"Using setter method: SetName",
		"Using getter method: GetName",
	}, s.Messages("models.User", SetterGetter))
	assert.Equal(t, []string{"Method: String"}, s.Messages("models.User", ToString))
	assert.Nil(t, s.Messages("models.User", Constructor))
	assert.Nil(t, s.Messages("models.Ghost", SetterGetter))
}

func TestClassesSorted(t *testing.T) {
	s := NewStore()
	s.Record(Random, "models.Zebra", "x")
	s.Record(Random, "models.Alpha", "y")

	assert.Equal(t, []string{"models.Alpha", "models.Zebra"}, s.Classes())
}

func TestReset(t *testing.T) {
	s := NewStore()
	s.Record(Random, "models.User", "x")
	s.Reset()

	assert.Empty(t, s.Classes())
	assert.Nil(t, s.Messages("models.User", Random))
}

func TestRenderFormat(t *testing.T) {
	s := NewStore()
	// Recorded out of kind order; rendering fixes the order.
	s.Record(Random, "models.User", "Methods tested: 3")
	s.Record(SetterGetter, "models.User", "Using setter method: SetName")

	expected := "Class: models.User\n" +
		"\tTest type: SetterGetter\n" +
		"\t\tUsing setter method: SetName\n" +
		"\tTest type: Random\n" +
		"\t\tMethods tested: 3\n"
	assert.Equal(t, expected, s.Render())
}

func TestRenderSortsClasses(t *testing.T) {
	s := NewStore()
	s.Record(Random, "models.Zebra", "z")
	s.Record(Random, "models.Alpha", "a")

	rendered := s.Render()
	assert.Less(t,
		strings.Index(rendered, "models.Alpha"),
		strings.Index(rendered, "models.Zebra"))
}

func TestRenderYAML(t *testing.T) {
	s := NewStore()
	s.Record(Constructor, "models.User", "Constructor: newUser")
	s.Record(ToString, "models.User", "Method: String")

	out, err := s.RenderYAML()
	require.NoError(t, err)

	var entries []struct {
		Class   string              `yaml:"class"`
		Results map[string][]string `yaml:"results"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "models.User", entries[0].Class)
	assert.Equal(t, []string{"Constructor: newUser"}, entries[0].Results["Constructor"])
	assert.Equal(t, []string{"Method: String"}, entries[0].Results["ToString"])
}

func TestWriteFile(t *testing.T) {
	s := NewStore()
	s.Record(Random, "models.User", "Methods tested: 2")

	path := filepath.Join(t.TempDir(), "report.txt")
	require.NoError(t, s.WriteFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, s.Render(), string(data))
}

func TestConcurrentWriters(t *testing.T) {
	s := NewStore()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			class := fmt.Sprintf("models.Class%d", worker)
			for j := 0; j < 100; j++ {
				s.Record(Random, class, fmt.Sprintf("entry %d", j))
			}
		}(i)
	}
	wg.Wait()

	assert.Len(t, s.Classes(), 8)
	for _, class := range s.Classes() {
		assert.Len(t, s.Messages(class, Random), 100)
	}
}

func TestDefaultStoreIsShared(t *testing.T) {
	Default().Reset()
	Default().Record(Random, "models.Shared", "x")

	assert.Same(t, Default(), Default())
	assert.Equal(t, []string{"models.Shared"}, Default().Classes())
	Default().Reset()
}
