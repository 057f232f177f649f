package cli

import (
	"context"
	"fmt"
	"time"

	pb "github.com/dmitrijs2005/secureshare/internal/proto"
)

func (a *App) status(ctx context.Context, args []string) error {
	id, err := contentID(newFlagSet("status"), args)
	if err != nil {
		return err
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	st, err := a.client.Status(ctx, id)
	if err != nil {
		if status, ok := statusFromError(err); ok {
			a.markStatus(ctx, id, status)
		}
		return err
	}
	a.markStatus(ctx, id, st.Status)

	fmt.Fprintf(a.out, "Status:    %s\n", st.Status)
	fmt.Fprintf(a.out, "Mode:      %s (%s)\n", st.AccessMode, st.ContentType)
	fmt.Fprintf(a.out, "Devices:   %d/%d\n", st.CurrentDevices, st.MaxDevices)
	fmt.Fprintf(a.out, "Views:     %d (%d remaining)\n", st.ViewsCount, st.ViewsRemaining)
	fmt.Fprintf(a.out, "Remaining: %s\n", st.TimeRemaining)
	if st.LastAccessedAt != nil {
		fmt.Fprintf(a.out, "Last view: %s\n", st.LastAccessedAt.AsTime().Local().Format(time.RFC1123))
	}
	return nil
}

func (a *App) terminate(ctx context.Context, args []string) error {
	fs := newFlagSet("terminate")
	pin := fs.String("pin", "", "PIN (prompted when omitted)")

	id, err := contentID(fs, args)
	if err != nil {
		return err
	}
	p, err := a.pinOrPrompt(*pin, "PIN")
	if err != nil {
		return err
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	cert, err := a.client.Terminate(ctx, id, p)
	if err != nil {
		return err
	}
	a.markStatus(ctx, id, "terminated")
	fmt.Fprintln(a.out, "Content destroyed.")
	a.printCertificate(cert)
	return nil
}

func (a *App) rotatePin(ctx context.Context, args []string) error {
	fs := newFlagSet("rotate")
	pin := fs.String("pin", "", "current PIN (prompted when omitted)")
	newPin := fs.String("new", "", "new PIN (generated when omitted)")

	id, err := contentID(fs, args)
	if err != nil {
		return err
	}
	p, err := a.pinOrPrompt(*pin, "Current PIN")
	if err != nil {
		return err
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	resp, err := a.client.RotatePin(ctx, &pb.RotatePinRequest{ContentId: id, CurrentPin: p, NewPin: *newPin})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "New PIN: %s\n", resp.Pin)
	if resp.NextRotationAt != nil {
		fmt.Fprintf(a.out, "Next rotation due: %s\n", resp.NextRotationAt.AsTime().Local().Format(time.RFC1123))
	}
	return nil
}

func (a *App) report(ctx context.Context, args []string) error {
	fs := newFlagSet("report")
	activity := fs.String("type", "", "activity type")
	device := fs.String("device", "", "reporting device id")
	description := fs.String("description", "", "free-form details")

	id, err := contentID(fs, args)
	if err != nil {
		return err
	}
	if *activity == "" {
		return fmt.Errorf("%w: -type is required", ErrUsage)
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	resp, err := a.client.ReportActivity(ctx, &pb.ActivityRequest{
		ContentId:    id,
		ActivityType: *activity,
		DeviceId:     *device,
		Description:  *description,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Recorded (%d in window)\n", resp.Count)
	if resp.Terminated {
		fmt.Fprintln(a.out, "Content was terminated due to suspicious activity.")
	}
	return nil
}

func (a *App) stats(ctx context.Context, args []string) error {
	if _, err := parseInterspersed(newFlagSet("stats"), args); err != nil {
		return err
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	st, err := a.client.Stats(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Content:      %d total, %d active\n", st.TotalContent, st.ActiveContent)
	fmt.Fprintf(a.out, "Modes:        %d time-based, %d one-time\n", st.TimeBasedContent, st.OneTimeContent)
	fmt.Fprintf(a.out, "Views:        %d\n", st.TotalViews)
	fmt.Fprintf(a.out, "Certificates: %d\n", st.CertificatesIssued)
	return nil
}

func (a *App) ping(ctx context.Context, _ []string) error {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	if err := a.client.Ping(ctx); err != nil {
		a.setMode(ModeOffline)
		return err
	}
	a.setMode(ModeOnline)
	fmt.Fprintln(a.out, "Server is reachable.")
	return nil
}
