package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"text/tabwriter"
	"time"

	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/dmitrijs2005/secureshare/internal/client/repositories/shares"
	"github.com/dmitrijs2005/secureshare/internal/common"
	pb "github.com/dmitrijs2005/secureshare/internal/proto"
)

var ErrNoHistory = errors.New("local history is disabled")

// now is a test seam for time.Now.
var now = time.Now

func optionalTime(ts *timestamppb.Timestamp) *time.Time {
	if ts == nil {
		return nil
	}
	t := ts.AsTime()
	return &t
}

// remember stores an uploaded share. History is best effort; a failure
// here never fails the upload.
func (a *App) remember(ctx context.Context, req *pb.UploadRequest, resp *pb.UploadResponse) {
	if a.history == nil {
		return
	}
	err := a.history.Add(ctx, &shares.Share{
		ContentID:   resp.ContentId,
		FileName:    req.FileName,
		ContentType: resp.ContentType,
		AccessMode:  resp.AccessMode,
		ShareURL:    resp.ShareUrl,
		CreatedAt:   now(),
		ExpiresAt:   optionalTime(resp.ExpiresAt),
	})
	if err != nil {
		log.Printf("history: %v", err)
	}
}

func (a *App) markStatus(ctx context.Context, contentID, status string) {
	if a.history == nil {
		return
	}
	err := a.history.UpdateStatus(ctx, contentID, status, now())
	if err != nil && !errors.Is(err, common.ErrorNotFound) {
		log.Printf("history: %v", err)
	}
}

// statusFromError turns a gone or missing item into a history status.
func statusFromError(err error) (string, bool) {
	switch {
	case errors.Is(err, common.ErrGone):
		return "gone", true
	case errors.Is(err, common.ErrorNotFound):
		return "destroyed", true
	}
	return "", false
}

func (a *App) list(ctx context.Context, args []string) error {
	fs := newFlagSet("list")
	refresh := fs.Bool("refresh", false, "query the server for the current status of each share")
	if _, err := parseInterspersed(fs, args); err != nil {
		return err
	}
	if a.history == nil {
		return ErrNoHistory
	}

	items, err := a.history.List(ctx)
	if err != nil {
		return err
	}

	if *refresh {
		for _, it := range items {
			if it.LastStatus != "active" {
				continue
			}
			rctx, cancel := a.withTimeout(ctx)
			st, err := a.client.Status(rctx, it.ContentID)
			cancel()

			status := ""
			if err == nil {
				status = st.Status
			} else if s, ok := statusFromError(err); ok {
				status = s
			} else {
				return err
			}
			a.markStatus(ctx, it.ContentID, status)
			it.LastStatus = status
		}
	}

	if len(items) == 0 {
		fmt.Fprintln(a.out, "No shares yet.")
		return nil
	}

	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CONTENT ID\tNAME\tMODE\tSTATUS\tCREATED\tEXPIRES")
	for _, it := range items {
		expires := "-"
		if it.ExpiresAt != nil {
			expires = it.ExpiresAt.Local().Format(time.DateTime)
		}
		name := it.FileName
		if name == "" {
			name = it.ContentType
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", it.ContentID, name, it.AccessMode, it.LastStatus,
			it.CreatedAt.Local().Format(time.DateTime), expires)
	}
	return w.Flush()
}

func (a *App) forget(ctx context.Context, args []string) error {
	id, err := contentID(newFlagSet("forget"), args)
	if err != nil {
		return err
	}
	if a.history == nil {
		return ErrNoHistory
	}
	if err := a.history.Delete(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Removed %s from local history.\n", id)
	return nil
}
