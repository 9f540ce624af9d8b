package rod_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fwojciec/sensei"
	"github.com/fwojciec/sensei/rod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpener_Open_NoBrowser(t *testing.T) {
	t.Parallel()

	opener := rod.NewOpener(rod.WithLookPath(func() (string, bool) {
		return "", false
	}))

	err := opener.Open(context.Background(), "https://docs.rs/serde")

	require.Error(t, err)
	assert.Equal(t, sensei.EOPEN, sensei.ErrorCode(err))
	assert.Contains(t, sensei.ErrorMessage(err), "no Chrome or Chromium")
}

func TestOpener_Open_KillsBrowserOnFailure(t *testing.T) {
	t.Parallel()

	// Given a launched browser whose control URL refuses connections
	srv := httptest.NewServer(http.NotFoundHandler())
	controlURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/devtools/browser/gone"
	srv.Close()

	var killed int
	opener := rod.NewOpener(
		rod.WithLookPath(func() (string, bool) { return "/usr/bin/chromium", true }),
		rod.WithLaunch(func(bin string) (string, func(), error) {
			return controlURL, func() { killed++ }, nil
		}),
	)

	// When opening fails after launch
	err := opener.Open(context.Background(), "https://docs.rs/serde")

	// Then the started browser is killed
	require.Error(t, err)
	assert.Equal(t, sensei.EOPEN, sensei.ErrorCode(err))
	assert.Contains(t, sensei.ErrorMessage(err), "connecting to browser")
	assert.Equal(t, 1, killed)
}

func TestOpener_Open_LaunchFailure(t *testing.T) {
	t.Parallel()

	var gotBin string
	opener := rod.NewOpener(
		rod.WithLookPath(func() (string, bool) { return "/opt/chrome/chrome", true }),
		rod.WithLaunch(func(bin string) (string, func(), error) {
			gotBin = bin
			return "", nil, errors.New("exec format error")
		}),
	)

	err := opener.Open(context.Background(), "/work/target/doc/serde/index.html")

	require.Error(t, err)
	assert.Equal(t, sensei.EOPEN, sensei.ErrorCode(err))
	assert.Contains(t, sensei.ErrorMessage(err), "launching browser")
	assert.Equal(t, "/opt/chrome/chrome", gotBin)
}

func TestTargetURL(t *testing.T) {
	t.Parallel()

	t.Run("keeps remote URLs", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "https://docs.rs/serde?search=Value", rod.TargetURL("https://docs.rs/serde?search=Value"))
	})

	t.Run("converts paths to file URLs", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "file:///work/target/doc/serde/index.html", rod.TargetURL("/work/target/doc/serde/index.html"))
	})
}
