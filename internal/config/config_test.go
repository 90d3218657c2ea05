package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadProfileOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "profiles.yaml")
	content := `gold:
  bias_threshold: 2.5
  volume_heavy_ratio: 2.0
stock:
  bias_threshold: 6.0
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	overrides, err := LoadProfileOverrides(path)
	if err != nil {
		t.Fatalf("解析覆盖文件失败: %v", err)
	}
	gold := overrides["gold"]
	if gold == nil || gold.BiasThreshold == nil || *gold.BiasThreshold != 2.5 {
		t.Errorf("gold 乖离率阈值覆盖错误: %+v", gold)
	}
	if gold.VolumeShrinkRatio != nil {
		t.Error("未设置的字段应为 nil")
	}
	if overrides["stock"] == nil || *overrides["stock"].BiasThreshold != 6.0 {
		t.Error("stock 覆盖缺失")
	}
}

func TestLoadProfileOverrides_Missing(t *testing.T) {
	overrides, err := LoadProfileOverrides(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Errorf("文件不存在不应报错: %v", err)
	}
	if overrides != nil {
		t.Error("文件不存在时应返回 nil")
	}
}
