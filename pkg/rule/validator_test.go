package rule_test

import (
	"testing"

	"github.com/go-playground/validator/v10"

	"github.com/yeisme/imagevault/pkg/rule"
)

// uploadRule 用于测试 ValidateStruct，字段形态与存储目录配置保持一致.
type uploadRule struct {
	Root     string `rule:"required"`
	MaxFiles int    `rule:"min=1,max=1000"`
}

// TestEngine 测试 Engine 函数返回非 nil 实例.
func TestEngine(t *testing.T) {
	engine := rule.Engine()
	if engine == nil {
		t.Error("Engine() returned nil")
	}
}

// TestValidateStruct 测试 ValidateStruct 对有效和无效结构体的验证.
func TestValidateStruct(t *testing.T) {
	// 有效结构体
	valid := uploadRule{Root: "uploads", MaxFiles: 10}

	err := rule.ValidateStruct(valid)
	if err != nil {
		t.Errorf("Expected no error for valid struct, got %v", err)
	}

	// 无效结构体：缺少 Root
	invalid1 := uploadRule{Root: "", MaxFiles: 10}

	err = rule.ValidateStruct(invalid1)
	if err == nil {
		t.Error("Expected error for invalid struct (missing root), got nil")
	}

	// 无效结构体：MaxFiles 小于 1
	invalid2 := uploadRule{Root: "uploads", MaxFiles: 0}

	err = rule.ValidateStruct(invalid2)
	if err == nil {
		t.Error("Expected error for invalid struct (max_files < 1), got nil")
	}
}

// TestValidateVar 测试 ValidateVar 对变量的验证.
func TestValidateVar(t *testing.T) {
	// 有效路径前缀
	err := rule.ValidateVar("/uploads", "required,startswith=/")
	if err != nil {
		t.Errorf("Expected no error for valid path prefix, got %v", err)
	}

	// 无效路径前缀
	err = rule.ValidateVar("uploads", "required,startswith=/")
	if err == nil {
		t.Error("Expected error for invalid path prefix, got nil")
	}

	// 有效端口
	err = rule.ValidateVar(8080, "min=1,max=65535")
	if err != nil {
		t.Errorf("Expected no error for valid port, got %v", err)
	}

	// 无效端口
	err = rule.ValidateVar(0, "min=1,max=65535")
	if err == nil {
		t.Error("Expected error for invalid port, got nil")
	}
}

// TestRegisterValidation 测试注册自定义验证.
func TestRegisterValidation(t *testing.T) {
	// 注册自定义验证：检查字符串长度是否为偶数
	err := rule.RegisterValidation("even_length", func(fl validator.FieldLevel) bool {
		str, ok := fl.Field().Interface().(string)
		if !ok {
			return false
		}

		return len(str)%2 == 0
	})
	if err != nil {
		t.Fatalf("Failed to register validation: %v", err)
	}

	// 测试有效字符串
	err = rule.ValidateVar("test", "even_length")
	if err != nil {
		t.Errorf("Expected no error for even length string, got %v", err)
	}

	// 测试无效字符串
	err = rule.ValidateVar("test1", "even_length")
	if err == nil {
		t.Error("Expected error for odd length string, got nil")
	}
}

// TestRegisterAlias 测试注册别名.
func TestRegisterAlias(t *testing.T) {
	rule.RegisterAlias("min_required", "required,min=3")

	// 测试有效字符串
	err := rule.ValidateVar("abc", "min_required")
	if err != nil {
		t.Errorf("Expected no error for valid string with alias, got %v", err)
	}

	// 测试无效字符串
	err = rule.ValidateVar("ab", "min_required")
	if err == nil {
		t.Error("Expected error for invalid string with alias, got nil")
	}
}

// TestErrors 测试校验错误到字典的解析.
func TestErrors(t *testing.T) {
	err := rule.ValidateStruct(uploadRule{Root: "", MaxFiles: 0})
	if err == nil {
		t.Fatal("Expected validation error, got nil")
	}

	fields := rule.Errors(err)
	if len(fields) != 2 {
		t.Errorf("Expected 2 field errors, got %d: %v", len(fields), fields)
	}

	if rule.Errors(nil) != nil {
		t.Error("Expected nil for nil error")
	}
}
