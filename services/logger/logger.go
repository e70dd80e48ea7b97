// Package logger cung cấp logger phân cấp mức độ cho các service nghiệp
// vụ của khách sạn (giữ chỗ phòng, tính hóa đơn, thông báo...).
package logger

import "log"

// Level định nghĩa các mức độ log
type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	ErrorLevel
)

// Logger interface định nghĩa các phương thức logging cho service
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
	Debug(format string, v ...interface{})
}

// ServiceLogger ghi log kèm tên service để lọc được log theo từng
// nghiệp vụ, ví dụ "[INFO] [availability] ..."
type ServiceLogger struct {
	level   Level
	service string
}

// NewDefaultLogger tạo logger không gắn tên service
func NewDefaultLogger(level Level) *ServiceLogger {
	return &ServiceLogger{level: level}
}

// NewServiceLogger tạo logger gắn tên service
func NewServiceLogger(service string, level Level) *ServiceLogger {
	return &ServiceLogger{level: level, service: service}
}

func (l *ServiceLogger) prefix(tag string) string {
	if l.service == "" {
		return "[" + tag + "] "
	}
	return "[" + tag + "] [" + l.service + "] "
}

// Info log thông tin nghiệp vụ
func (l *ServiceLogger) Info(format string, v ...interface{}) {
	if l.level <= InfoLevel {
		log.Printf(l.prefix("INFO")+format, v...)
	}
}

// Error log lỗi
func (l *ServiceLogger) Error(format string, v ...interface{}) {
	if l.level <= ErrorLevel {
		log.Printf(l.prefix("ERROR")+format, v...)
	}
}

// Debug log chi tiết khi chẩn đoán
func (l *ServiceLogger) Debug(format string, v ...interface{}) {
	if l.level <= DebugLevel {
		log.Printf(l.prefix("DEBUG")+format, v...)
	}
}
