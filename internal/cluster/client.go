package cluster

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/omar221neva/FinalGp/internal/models"
)

// ErrRemote wraps a failure reported by the node.
var ErrRemote = errors.New("scoring node error")

func SendTask(ctx context.Context, addr string, task *RecTask) (*RecResponse, error) {
	d := net.Dialer{}
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	if err := json.NewEncoder(conn).Encode(task); err != nil {
		return nil, err
	}

	var resp RecResponse
	if err := json.NewDecoder(bufio.NewReader(conn)).Decode(&resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Scorer delegates recommendation scoring to a remote node.
type Scorer struct {
	Addr    string
	Timeout time.Duration
}

func (s *Scorer) Score(ctx context.Context, userID string, bookedIDs []string, catalog []models.Listing, topN int) ([]models.DisplayRecord, error) {
	if s.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.Timeout)
		defer cancel()
	}

	task := &RecTask{
		TaskID:    uuid.NewString(),
		UserID:    userID,
		TopN:      topN,
		BookedIDs: bookedIDs,
		Listings:  catalog,
	}
	resp, err := SendTask(ctx, s.Addr, task)
	if err != nil {
		return nil, fmt.Errorf("scoring node %s: %w", s.Addr, err)
	}
	if resp.Error != "" {
		return nil, fmt.Errorf("%w: %s", ErrRemote, resp.Error)
	}
	if resp.Items == nil {
		resp.Items = []models.DisplayRecord{}
	}
	return resp.Items, nil
}
