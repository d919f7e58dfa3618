package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestClassifiedError(t *testing.T) {
	t.Run("Basic error creation", func(t *testing.T) {
		err := NewError(CategoryConfig, "invalid configuration").
			WithSeverity(SeverityFatal).
			WithContext("file", "docfence.yaml").
			Build()

		if err.Category() != CategoryConfig {
			t.Errorf("expected category %s, got %s", CategoryConfig, err.Category())
		}
		if err.Severity() != SeverityFatal {
			t.Errorf("expected severity %s, got %s", SeverityFatal, err.Severity())
		}
		if err.Message() != "invalid configuration" {
			t.Errorf("expected message 'invalid configuration', got %s", err.Message())
		}

		file, exists := err.Context().GetString("file")
		if !exists || file != "docfence.yaml" {
			t.Errorf("expected context file=docfence.yaml, got %v", file)
		}
	})

	t.Run("Error detection", func(t *testing.T) {
		err := ConfigError("test error").Build()

		if _, ok := AsClassified(err); !ok {
			t.Error("expected error to be classified")
		}

		if !HasCategory(err, CategoryConfig) {
			t.Error("expected error to have config category")
		}

		if !err.IsFatal() {
			t.Error("expected config error to be fatal")
		}
	})

	t.Run("Detail excludes category decoration", func(t *testing.T) {
		cause := errors.New("exit status 1: parse error")
		err := WrapError(cause, CategoryProcess, "pikchr failed").Build()

		detail := err.Detail()
		if detail != "pikchr failed: exit status 1: parse error" {
			t.Errorf("unexpected detail: %s", detail)
		}
		if strings.Contains(detail, "[process") {
			t.Errorf("detail should not carry category decoration: %s", detail)
		}
		if !strings.Contains(err.Error(), "[process:error]") {
			t.Errorf("Error() should carry category decoration: %s", err.Error())
		}
	})
}

func TestErrorBuilder(t *testing.T) {
	t.Run("Fluent API", func(t *testing.T) {
		originalErr := errors.New("original error")
		err := WrapError(originalErr, CategorySpawn, "renderer unavailable").
			Warning().
			WithContext("binary", "freeze").
			WithContext("fence", "freeze").
			Build()

		if err.Category() != CategorySpawn {
			t.Errorf("expected category %s, got %s", CategorySpawn, err.Category())
		}
		if err.Severity() != SeverityWarning {
			t.Errorf("expected severity %s, got %s", SeverityWarning, err.Severity())
		}
		if !errors.Is(err, originalErr) {
			t.Error("expected error to wrap original error")
		}

		binary, _ := err.Context().GetString("binary")
		if binary != "freeze" {
			t.Errorf("expected binary context 'freeze', got %s", binary)
		}
	})

	t.Run("Convenience constructors", func(t *testing.T) {
		tests := []struct {
			name     string
			builder  *ErrorBuilder
			category ErrorCategory
			severity ErrorSeverity
		}{
			{"ConfigError", ConfigError("test"), CategoryConfig, SeverityFatal},
			{"ValidationError", ValidationError("test"), CategoryValidation, SeverityError},
			{"ProcessError", ProcessError("test"), CategoryProcess, SeverityError},
			{"SpawnError", SpawnError("test"), CategorySpawn, SeverityError},
			{"NormalizationError", NormalizationError("test"), CategoryNormalization, SeverityError},
			{"BuildError", BuildError("test"), CategoryBuild, SeverityFatal},
			{"FileSystemError", FileSystemError("test"), CategoryFileSystem, SeverityError},
			{"CheckError", CheckError("test"), CategoryCheck, SeverityError},
			{"PreviewError", PreviewError("test"), CategoryPreview, SeverityFatal},
			{"InternalError", InternalError("test"), CategoryInternal, SeverityFatal},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				err := tt.builder.Build()
				if err.Category() != tt.category {
					t.Errorf("expected category %s, got %s", tt.category, err.Category())
				}
				if err.Severity() != tt.severity {
					t.Errorf("expected severity %s, got %s", tt.severity, err.Severity())
				}
			})
		}
	})
}

func TestErrorContext(t *testing.T) {
	t.Run("Context operations", func(t *testing.T) {
		ctx := make(ErrorContext)
		ctx = ctx.Set("key1", "value1")
		ctx = ctx.Set("key2", 42)

		value1, exists1 := ctx.GetString("key1")
		if !exists1 || value1 != "value1" {
			t.Errorf("expected key1=value1, got %v", value1)
		}

		value2, exists2 := ctx.Get("key2")
		if !exists2 || value2 != 42 {
			t.Errorf("expected key2=42, got %v", value2)
		}

		_, exists3 := ctx.Get("nonexistent")
		if exists3 {
			t.Error("expected nonexistent key to not exist")
		}
	})

	t.Run("Context merge", func(t *testing.T) {
		ctx1 := make(ErrorContext)
		ctx1 = ctx1.Set("key1", "value1")
		ctx1 = ctx1.Set("shared", "original")

		ctx2 := make(ErrorContext)
		ctx2 = ctx2.Set("key2", "value2")
		ctx2 = ctx2.Set("shared", "overridden")

		merged := ctx1.Merge(ctx2)

		value1, _ := merged.GetString("key1")
		value2, _ := merged.GetString("key2")
		shared, _ := merged.GetString("shared")

		if value1 != "value1" {
			t.Errorf("expected key1=value1, got %s", value1)
		}
		if value2 != "value2" {
			t.Errorf("expected key2=value2, got %s", value2)
		}
		if shared != "overridden" {
			t.Errorf("expected shared=overridden, got %s", shared)
		}
	})
}
