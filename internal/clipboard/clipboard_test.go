package clipboard

import (
	"errors"
	"os"
	"testing"

	"github.com/zhubert/songbook/internal/logger"
)

func TestMain(m *testing.M) {
	logger.Reset()
	logger.Init(os.DevNull)
	code := m.Run()
	logger.Reset()
	os.Exit(code)
}

type memoryBackend struct {
	text    string
	initErr error
	inits   int
}

func (m *memoryBackend) Init() error {
	m.inits++
	return m.initErr
}

func (m *memoryBackend) WriteText(text string) { m.text = text }

func TestWriteText(t *testing.T) {
	mem := &memoryBackend{}
	SetBackend(mem)
	defer ResetBackend()

	if err := WriteText("Line C\nLine D"); err != nil {
		t.Fatalf("WriteText: %v", err)
	}
	if err := WriteText("Line E"); err != nil {
		t.Fatalf("second WriteText: %v", err)
	}
	if mem.text != "Line E" {
		t.Errorf("backend text = %q, want %q", mem.text, "Line E")
	}
	if mem.inits != 1 {
		t.Errorf("Init should run once, ran %d times", mem.inits)
	}
}

func TestInitFailure(t *testing.T) {
	mem := &memoryBackend{initErr: errors.New("no display")}
	SetBackend(mem)
	defer ResetBackend()

	if err := WriteText("x"); err == nil {
		t.Fatal("expected init error")
	}
	if mem.text != "" {
		t.Error("nothing should be written when init fails")
	}
}
