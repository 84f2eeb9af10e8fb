package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"time"

	"github.com/iov-one/vesting/errors"
	"github.com/iov-one/vesting/x/subscription"
	"github.com/tendermint/tendermint/libs/log"
)

// logPayer only reports payouts. It is used when no payout service is
// configured.
type logPayer struct {
	logger log.Logger
}

func (p *logPayer) Pay(ctx context.Context, t subscription.Transfer) error {
	p.logger.Info("payout requested",
		"recipient", t.Recipient, "amount", t.Amount, "issued", t.Issued)
	return nil
}

// webhookPayer delegates payouts to an external service by sending each
// transfer as a JSON encoded POST request.
type webhookPayer struct {
	url string
	cli *http.Client
}

func newWebhookPayer(url string, timeout time.Duration) *webhookPayer {
	return &webhookPayer{
		url: url,
		cli: &http.Client{Timeout: timeout},
	}
}

func (p *webhookPayer) Pay(ctx context.Context, t subscription.Transfer) error {
	body, err := json.Marshal(t)
	if err != nil {
		return errors.Wrap(errors.ErrEncoding, err.Error())
	}
	req, err := http.NewRequest("POST", p.url, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	req = req.WithContext(ctx)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.cli.Do(req)
	if err != nil {
		return errors.Wrap(errors.ErrInternal, fmt.Sprintf("payout request: %s", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := ioutil.ReadAll(io.LimitReader(resp.Body, 1024))
		return errors.Wrapf(errors.ErrInternal, "payout rejected: %d %s", resp.StatusCode, bytes.TrimSpace(msg))
	}
	return nil
}
