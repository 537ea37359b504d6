package scanner

import (
	"context"
	"strings"
	"time"

	wifiscan "github.com/dogeorg/wifiscan/pkg"
	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"
)

var _ wifiscan.Scanner = &RemoteScanner{}

// RemoteScanner reads scans from another wifiscan instance running in web
// mode, so a headless box can be watched from a terminal elsewhere.
type RemoteScanner struct {
	client *resty.Client
	log    logrus.FieldLogger
}

func NewRemoteScanner(baseURL string, timeout time.Duration, log logrus.FieldLogger) *RemoteScanner {
	client := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	return &RemoteScanner{
		client: client,
		log:    log.WithField("component", "remote").WithField("url", baseURL),
	}
}

func (t *RemoteScanner) Scan(ctx context.Context) []wifiscan.ScanRecord {
	resp, err := t.client.R().SetContext(ctx).Get("/api/scan")
	if err != nil {
		t.log.WithError(err).Debug("Remote scan failed")
		return []wifiscan.ScanRecord{}
	}
	if resp.IsError() {
		t.log.WithField("status", resp.StatusCode()).Debug("Remote scan returned an error")
		return []wifiscan.ScanRecord{}
	}

	records, err := Decode(resp.Body())
	if err != nil {
		t.log.WithError(err).Debug("Discarding remote scan")
		return []wifiscan.ScanRecord{}
	}
	return records
}
