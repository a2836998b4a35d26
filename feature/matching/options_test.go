package matching

import (
	"os"
	"path/filepath"
	"testing"

	"go.viam.com/test"
)

func TestNewOptions(t *testing.T) {
	opts := NewOptions()
	test.That(t, opts.MaxRatio, test.ShouldEqual, 0.8)
	test.That(t, opts.MaxDistance, test.ShouldEqual, 0.7)
	test.That(t, opts.CrossCheck, test.ShouldBeTrue)
	test.That(t, opts.MaxError, test.ShouldEqual, 4.0)
	test.That(t, opts.Validate("path"), test.ShouldBeNil)
}

func TestOptionsValidate(t *testing.T) {
	opts := NewOptions()
	opts.MaxRatio = 0
	err := opts.Validate("path")
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "error validating \"path\": max_ratio should be > 0")

	opts = NewOptions()
	opts.MaxDistance = -1
	err = opts.Validate("path")
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "max_distance should be > 0")

	opts = NewOptions()
	opts.MaxError = 0
	err = opts.Validate("path")
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "max_error should be > 0")
}

func TestLoadOptions(t *testing.T) {
	tempDir := t.TempDir()

	goodPath := filepath.Join(tempDir, "options.json")
	err := os.WriteFile(goodPath, []byte(`{"max_ratio": 0.9, "max_distance": 0.6, "cross_check": true, "max_error": 2}`), 0o600)
	test.That(t, err, test.ShouldBeNil)
	opts, err := LoadOptions(goodPath)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, opts, test.ShouldResemble, &Options{MaxRatio: 0.9, MaxDistance: 0.6, CrossCheck: true, MaxError: 2})

	// A configuration without max_ratio does not validate.
	partialPath := filepath.Join(tempDir, "partial.json")
	err = os.WriteFile(partialPath, []byte(`{"max_distance": 0.6, "cross_check": true, "max_error": 2}`), 0o600)
	test.That(t, err, test.ShouldBeNil)
	_, err = LoadOptions(partialPath)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "max_ratio should be > 0")

	brokenPath := filepath.Join(tempDir, "broken.json")
	err = os.WriteFile(brokenPath, []byte(`{"max_ratio": `), 0o600)
	test.That(t, err, test.ShouldBeNil)
	_, err = LoadOptions(brokenPath)
	test.That(t, err, test.ShouldNotBeNil)

	_, err = LoadOptions(filepath.Join(tempDir, "missing.json"))
	test.That(t, err, test.ShouldNotBeNil)
}
