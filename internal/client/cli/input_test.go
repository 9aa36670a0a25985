package cli

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func rdr(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("hello world\n"), "Name?", &out)
	if err != nil || got != "hello world" {
		t.Fatalf("got %q, err=%v", got, err)
	}
}

func TestGetSimpleTextEOF(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("lastline"), "Name?", &out)
	if err != nil || got != "lastline" {
		t.Fatalf("got %q, err=%v", got, err)
	}
}

func TestGetPassword_Error(t *testing.T) {
	old := readPassword
	defer func() { readPassword = old }()
	readPassword = func(int) ([]byte, error) {
		return nil, errors.New("boom")
	}
	var out bytes.Buffer
	_, err := GetPassword(&out)
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestGetDate(t *testing.T) {
	var out bytes.Buffer

	got, err := GetDate(rdr("2000-06-15\n"), "Date of birth", &out)
	require.NoError(t, err)
	require.Equal(t, time.Date(2000, 6, 15, 0, 0, 0, 0, time.UTC), got)

	got, err = GetDate(rdr("\n"), "Date of birth", &out)
	require.NoError(t, err)
	require.True(t, got.IsZero())

	// invalid input re-prompts until a valid date arrives
	got, err = GetDate(rdr("15.06.2000\n2000-06-15\n"), "Date of birth", &out)
	require.NoError(t, err)
	require.Equal(t, time.Date(2000, 6, 15, 0, 0, 0, 0, time.UTC), got)
}

func TestGetChoice(t *testing.T) {
	var out bytes.Buffer
	options := []string{"Music", "Programming"}

	idx, err := GetChoice(rdr("2\n"), "Category:", options, &out)
	require.NoError(t, err)
	require.Equal(t, 1, idx)

	idx, err = GetChoice(rdr("\n"), "Category:", options, &out)
	require.NoError(t, err)
	require.Equal(t, -1, idx)

	idx, err = GetChoice(rdr("9\n1\n"), "Category:", options, &out)
	require.NoError(t, err)
	require.Equal(t, 0, idx)
}

func TestGetMultiChoice(t *testing.T) {
	var out bytes.Buffer
	options := []string{"Music", "Programming", "Languages"}

	picks, err := GetMultiChoice(rdr("1, 3\n"), "Pick:", options, &out)
	require.NoError(t, err)
	require.Equal(t, []string{"Music", "Languages"}, picks)

	// empty and out-of-range picks re-prompt
	picks, err = GetMultiChoice(rdr("\n7\n2\n"), "Pick:", options, &out)
	require.NoError(t, err)
	require.Equal(t, []string{"Programming"}, picks)
}
