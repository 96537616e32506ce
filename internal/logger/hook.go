package logger

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"

	"github.com/sirupsen/logrus"
)

// AsyncHook ghi log bất đồng bộ để file I/O chậm không block request handling.
// Entries được buffer vào channel và ghi vào các writers trong một goroutine riêng.
type AsyncHook struct {
	writers []io.Writer
	entries chan *logrus.Entry
	wg      sync.WaitGroup
	mu      sync.Mutex
	closed  bool
}

// NewAsyncHook tạo async hook với nhiều writers (file, stdout).
// bufferSize: kích thước buffer cho log entries (<=0 dùng mặc định 1000).
func NewAsyncHook(writers []io.Writer, bufferSize int) *AsyncHook {
	if bufferSize <= 0 {
		bufferSize = 1000
	}

	hook := &AsyncHook{
		writers: writers,
		entries: make(chan *logrus.Entry, bufferSize),
	}

	hook.wg.Add(1)
	go hook.processEntries()

	return hook
}

// Levels trả về các log levels mà hook này xử lý
func (h *AsyncHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire đưa entry vào channel, không block.
// Nếu channel đầy thì bỏ qua entry để giữ latency của request.
func (h *AsyncHook) Fire(entry *logrus.Entry) error {
	h.mu.Lock()
	closed := h.closed
	h.mu.Unlock()

	if closed {
		// Hook đã đóng: ghi trực tiếp (fallback khi shutdown)
		data, err := h.format(entry)
		if err != nil {
			return err
		}
		for _, writer := range h.writers {
			_, _ = writer.Write(data)
		}
		return nil
	}

	select {
	case h.entries <- entry:
	default:
		// Channel đầy, bỏ qua entry. Không log warning ở đây vì sẽ tạo vòng lặp.
	}

	return nil
}

// processEntries ghi các entries trong goroutine riêng.
// Có recover để goroutine logger không làm crash server.
func (h *AsyncHook) processEntries() {
	defer h.wg.Done()

	for entry := range h.entries {
		func() {
			defer func() {
				if r := recover(); r != nil {
					// Không dùng logger ở đây vì sẽ tạo vòng lặp - ghi thẳng stderr
					fmt.Fprintf(os.Stderr, "[LOGGER PANIC] %v\n", r)
					debug.PrintStack()
				}
			}()

			data, err := h.format(entry)
			if err != nil {
				return
			}
			for _, writer := range h.writers {
				if _, err := writer.Write(data); err != nil {
					continue
				}
			}
		}()
	}
}

// format chuyển entry thành bytes bằng formatter của logger
func (h *AsyncHook) format(entry *logrus.Entry) ([]byte, error) {
	if entry.Logger != nil && entry.Logger.Formatter != nil {
		return entry.Logger.Formatter.Format(entry)
	}
	line, err := entry.String()
	if err != nil {
		return nil, err
	}
	return []byte(line), nil
}

// Close đóng hook và đợi các entries còn lại được ghi xong
func (h *AsyncHook) Close() error {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return nil
	}
	h.closed = true
	h.mu.Unlock()

	close(h.entries)
	h.wg.Wait()
	return nil
}
