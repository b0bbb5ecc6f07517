package util

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetenv(t *testing.T) {
	a := assert.New(t)

	reset := SetEnv("euchre_test_var", "set")
	defer reset()

	a.Equal("set", Getenv("euchre_test_var", "fallback"))
	a.Equal("fallback", Getenv("euchre_test_missing", "fallback"))
}

func TestSetEnv(t *testing.T) {
	a := assert.New(t)

	const key = "euchre_test_env"
	_, found := os.LookupEnv(key)
	a.False(found)

	restoreFirst := SetEnv(key, "one")
	a.Equal("one", os.Getenv(key))

	// restores stack: each restore puts back what it replaced
	restoreSecond := SetEnv(key, "two")
	a.Equal("two", os.Getenv(key))

	restoreSecond()
	a.Equal("one", os.Getenv(key))

	restoreFirst()
	_, found = os.LookupEnv(key)
	a.False(found)
}
