// Package logging 提供导入过程的三个日志通道：SQL、变更、错误
// 对应原工具的三个日志窗口；任意实现只需提供 Log 一个方法
package logging

import (
	"fmt"
	"log"
	"os"
	"sync"
)

// Sink 日志接收端
type Sink interface {
	Log(message string)
}

// Channels 导入过程使用的日志通道组
type Channels struct {
	SQL    Sink // SQL 执行日志
	Change Sink // 数据变更日志
	Error  Sink // 错误日志
}

// ConsoleChannels 全部输出到标准日志的通道组
func ConsoleChannels() Channels {
	return Channels{
		SQL:    NewConsoleSink("[sql] "),
		Change: NewConsoleSink("[change] "),
		Error:  NewConsoleSink("[error] "),
	}
}

// NullChannels 丢弃全部输出的通道组（测试用）
func NullChannels() Channels {
	return Channels{SQL: NullSink{}, Change: NullSink{}, Error: NullSink{}}
}

// ConsoleSink 输出到标准日志
type ConsoleSink struct {
	logger *log.Logger
}

// NewConsoleSink 创建控制台日志接收端
func NewConsoleSink(prefix string) *ConsoleSink {
	return &ConsoleSink{
		logger: log.New(os.Stderr, prefix, log.LstdFlags),
	}
}

// Log 输出一条日志
func (s *ConsoleSink) Log(message string) {
	s.logger.Println(message)
}

// FileSink 追加写入文件
type FileSink struct {
	mu   sync.Mutex
	file *os.File
}

// NewFileSink 创建文件日志接收端
func NewFileSink(path string) (*FileSink, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return &FileSink{file: f}, nil
}

// Log 写入一条日志
func (s *FileSink) Log(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintln(s.file, message)
}

// Close 关闭日志文件
func (s *FileSink) Close() error {
	return s.file.Close()
}

// MemorySink 记录到内存（测试用）
type MemorySink struct {
	mu       sync.Mutex
	Messages []string
}

// Log 记录一条日志
func (s *MemorySink) Log(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Messages = append(s.Messages, message)
}

// All 返回已记录的日志副本
func (s *MemorySink) All() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.Messages))
	copy(out, s.Messages)
	return out
}

// NullSink 丢弃全部日志
type NullSink struct{}

// Log 丢弃日志
func (NullSink) Log(string) {}
