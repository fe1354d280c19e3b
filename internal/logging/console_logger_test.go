package logging

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"testing"
)

// captureStderr runs fn with os.Stderr redirected to a pipe and returns what was written.
// Loggers must be constructed inside fn so they bind to the pipe.
func captureStderr(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stderr
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	os.Stderr = w

	outputCh := make(chan string)
	go func() {
		var buf bytes.Buffer
		io.Copy(&buf, r)
		outputCh <- buf.String()
	}()

	fn()

	w.Close()
	os.Stderr = old
	return <-outputCh
}

func TestConsoleLogger_Levels(t *testing.T) {
	tests := []struct {
		name     string
		verbose  bool
		log      func(l *ConsoleLogger)
		expected string
	}{
		{
			name:     "verbose enabled",
			verbose:  true,
			log:      func(l *ConsoleLogger) { l.Verbose("Skipping %s", "./dist") },
			expected: "[VERBOSE] Skipping ./dist\n",
		},
		{
			name:     "verbose disabled",
			verbose:  false,
			log:      func(l *ConsoleLogger) { l.Verbose("Skipping %s", "./dist") },
			expected: "",
		},
		{
			name:     "info",
			verbose:  false,
			log:      func(l *ConsoleLogger) { l.Info("Rewrote %d file(s)", 2) },
			expected: "Rewrote 2 file(s)\n",
		},
		{
			name:     "error",
			verbose:  false,
			log:      func(l *ConsoleLogger) { l.Error("read failed: %s", "./a.go") },
			expected: "[ERROR] read failed: ./a.go\n",
		},
		{
			name:     "percent without args is literal",
			verbose:  false,
			log:      func(l *ConsoleLogger) { l.Info("100% done") },
			expected: "100% done\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := captureStderr(t, func() {
				tt.log(NewConsoleLogger(tt.verbose))
			})
			if output != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, output)
			}
		})
	}
}

func TestConsoleLogger_ConcurrentSafety(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLoggerWithWriter(&buf, true, false)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			logger.Info("message %d", id)
			logger.Verbose("verbose %d", id)
			logger.Error("error %d", id)
		}(i)
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 30 {
		t.Errorf("Expected 30 lines, got %d", len(lines))
	}
	for i, line := range lines {
		if !strings.Contains(line, "message") && !strings.Contains(line, "verbose") && !strings.Contains(line, "error") {
			t.Errorf("Line %d appears corrupted: %q", i, line)
		}
	}
}

func TestConsoleLoggerWithWriter(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLoggerWithWriter(&buf, true, false)

	logger.Verbose("Skipping %s", "./node_modules")
	logger.Info("Processed %d file(s)", 3)
	logger.Error("no args")

	expected := "[VERBOSE] Skipping ./node_modules\nProcessed 3 file(s)\n[ERROR] no args\n"
	if buf.String() != expected {
		t.Errorf("Expected %q, got %q", expected, buf.String())
	}
}

func TestConsoleLoggerWithWriter_Styled(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLoggerWithWriter(&buf, true, true)

	logger.Error("write failed: %s", "./a.go")

	// A buffer has no color profile, so styling must not lose the text.
	if !strings.Contains(buf.String(), "[ERROR]") || !strings.HasSuffix(buf.String(), "write failed: ./a.go\n") {
		t.Errorf("Unexpected styled output %q", buf.String())
	}
}

func TestNullLogger_DiscardsAllMessages(t *testing.T) {
	output := captureStderr(t, func() {
		logger := NewNullLogger()
		logger.Verbose("verbose")
		logger.Info("info")
		logger.Error("error")
	})

	if output != "" {
		t.Errorf("NullLogger should discard all messages, got: %q", output)
	}
}

func BenchmarkConsoleLogger_VerboseDisabled(b *testing.B) {
	logger := NewConsoleLoggerWithWriter(io.Discard, false, false)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Verbose("benchmark message %d", i)
	}
}

// Example demonstrates NullLogger usage
func ExampleNullLogger() {
	logger := NewNullLogger()
	logger.Info("This message is discarded")
	logger.Verbose("This too")
	logger.Error("And this")
	fmt.Println("Done")
	// Output:
	// Done
}
