package tool

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/avast/retry-go"
	"github.com/getsentry/sentry-go"
	"go.uber.org/zap"

	"github.com/khiladisngh/Windows-Font-Changer/pkg/logger"
)

// HttpGet fetches a URL with a few quick retries. Used only for the release
// check; registry operations never retry.
func HttpGet(url string) []byte {
	var body []byte
	err := retry.Do(func() error {
		resp, err := http.Get(url)
		if err != nil {
			return err
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("unexpected status %s", resp.Status)
		}
		body, err = io.ReadAll(resp.Body)
		return err
	}, retry.Delay(time.Millisecond*100), retry.Attempts(3))
	if err != nil {
		sentry.WithScope(func(scope *sentry.Scope) {
			scope.SetLevel(sentry.LevelWarning)
			scope.SetExtra("url", url)
			scope.SetExtra("error", err.Error())
			sentry.CaptureMessage("http request failed")
		})
		logger.Debug("http request failed", zap.String("url", url), zap.Error(err))
		return nil
	}
	return body
}
