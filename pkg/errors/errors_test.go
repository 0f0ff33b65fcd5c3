package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAndError(t *testing.T) {
	err := New(ErrConfigLoad, "cannot load rules")
	assert.Equal(t, "[CONFIG_LOAD] cannot load rules", err.Error())
	assert.Equal(t, ErrConfigLoad, err.Code)
}

func TestWrapPreservesCause(t *testing.T) {
	cause := stderrors.New("disk on fire")
	err := Wrap(cause, ErrMoveFailed, "move failed")

	assert.Equal(t, "[MOVE_FAILED] move failed: disk on fire", err.Error())
	assert.True(t, stderrors.Is(err, cause))
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, ErrInternal, "nothing"))
	assert.Nil(t, Wrapf(nil, ErrInternal, "nothing %d", 1))
}

func TestIsMatchesByCode(t *testing.T) {
	err := Newf(ErrSourceNotFound, "source not found: %s", "/nope")
	target := New(ErrSourceNotFound, "")

	assert.True(t, stderrors.Is(err, target))
	assert.False(t, stderrors.Is(err, New(ErrSourceNotDir, "")))
}

func TestGetCode(t *testing.T) {
	assert.Equal(t, ErrConfigParse, GetCode(New(ErrConfigParse, "bad")))
	assert.Equal(t, ErrConfigParse, GetCode(Wrap(New(ErrConfigParse, "bad"), ErrConfigParse, "outer")))
	assert.Equal(t, ErrUnknown, GetCode(stderrors.New("plain")))
	assert.True(t, IsCode(New(ErrDirCreate, "x"), ErrDirCreate))
}

func TestWithDetail(t *testing.T) {
	err := New(ErrFileAccess, "denied").WithDetail("path", "/etc/shadow")
	require.Contains(t, err.Details, "path")
	assert.Equal(t, "/etc/shadow", err.Details["path"])
}
