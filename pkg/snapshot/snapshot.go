package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

var (
	callsLock sync.Mutex
	calls     = make(map[string]int)
)

// ValidateSnapshot compares obj, as indented JSON, with testdata/<test name>-<call>.json
// The file is written when it does not exist yet, or when UPDATE_SNAPSHOTS is set
func ValidateSnapshot(t *testing.T, obj interface{}, msgAndArgs ...interface{}) bool {
	t.Helper()

	got, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		t.Fatal(err)
	}

	filename := nextFilename(t)
	want, err := os.ReadFile(filename)
	if os.IsNotExist(err) || os.Getenv("UPDATE_SNAPSHOTS") != "" {
		write(t, filename, got)
		return true
	} else if err != nil {
		t.Fatal(err)
	}

	if !assert.Equal(t, strings.TrimSpace(string(want)), strings.TrimSpace(string(got)), msgAndArgs...) {
		t.Logf("snapshot %s, run with UPDATE_SNAPSHOTS=1 to accept", filename)
		return false
	}

	return true
}

func nextFilename(t *testing.T) string {
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())

	callsLock.Lock()
	call := calls[name]
	calls[name] = call + 1
	callsLock.Unlock()

	return filepath.Join("testdata", fmt.Sprintf("%s-%d.json", name, call))
}

func write(t *testing.T, filename string, b []byte) {
	t.Helper()
	logrus.WithField("filename", filename).Info("writing snapshot file")

	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(filename, append(b, '\n'), 0644); err != nil {
		t.Fatal(err)
	}
}
