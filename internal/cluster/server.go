package cluster

import (
	"bufio"
	"context"
	"errors"
	"net"
	"time"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/omar221neva/FinalGp/internal/metrics"
	"github.com/omar221neva/FinalGp/internal/recommend"
)

// Serve accepts tasks on ln until ctx is cancelled. Each connection carries
// exactly one task and one response.
func Serve(ctx context.Context, ln net.Listener, log zerolog.Logger) error {
	go func() {
		<-ctx.Done()
		_ = ln.Close()
	}()

	for {
		conn, err := ln.Accept()
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				return nil
			}
			log.Warn().Err(err).Msg("accept error")
			continue
		}
		go handleConn(conn, log)
	}
}

func handleConn(conn net.Conn, log zerolog.Logger) {
	defer conn.Close()

	var task RecTask
	if err := json.NewDecoder(bufio.NewReader(conn)).Decode(&task); err != nil {
		metrics.NodeTasks.WithLabelValues("bad_request").Inc()
		log.Warn().Err(err).Msg("decode task error")
		return
	}

	log.Info().Str("task_id", task.TaskID).Str("user_id", task.UserID).
		Int("listings", len(task.Listings)).Int("bookings", len(task.BookedIDs)).
		Msg("task received")

	start := time.Now()
	resp := RecResponse{TaskID: task.TaskID}
	items, err := recommend.Recommend(task.BookedIDs, task.Listings, task.TopN)
	if err != nil {
		resp.Error = err.Error()
		metrics.NodeTasks.WithLabelValues("error").Inc()
		log.Error().Err(err).Str("task_id", task.TaskID).Msg("compute error")
	} else {
		resp.Items = items
		metrics.NodeTasks.WithLabelValues("ok").Inc()
	}

	log.Info().Str("task_id", task.TaskID).Int("items", len(resp.Items)).
		Dur("elapsed", time.Since(start)).Msg("task completed")

	if err := json.NewEncoder(conn).Encode(&resp); err != nil {
		log.Warn().Err(err).Str("task_id", task.TaskID).Msg("encode response error")
	}
}
