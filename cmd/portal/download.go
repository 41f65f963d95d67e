package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/manifoldco/promptui"
	"github.com/urfave/cli"

	"github.com/nativebridge/portal-go/internal/logger"
	"github.com/nativebridge/portal-go/internal/portal/entity"
	"github.com/nativebridge/portal-go/internal/portal/repository"
	"github.com/nativebridge/portal-go/internal/portal/usecase"
)

type downloadSession struct {
	flow   *usecase.ReviewFlow
	client *repository.APIClient

	jobID      string
	index      int
	key        string
	outputPath string
}

func (d *downloadSession) run(ctx context.Context) error {
	job, err := d.flow.FetchJob(ctx, d.jobID)
	if err != nil {
		return d.exit(ctx, d.flow.View().Error)
	}

	file, err := d.pickFile(job)
	if err != nil {
		return err
	}

	if d.outputPath == "" {
		signedURL, err := d.flow.Download(ctx, file)
		if err != nil {
			return d.exit(ctx, d.flow.View().Notice)
		}
		fmt.Println("Opened " + file.Name + " in your browser.")
		fmt.Println(signedURL)
		return nil
	}

	signedURL, err := d.flow.ResolveDownload(ctx, file)
	if err != nil {
		return d.exit(ctx, d.flow.View().Notice)
	}
	dst, err := resolveOutputPath(d.outputPath, file.Name)
	if err != nil {
		return err
	}
	written, err := saveDownload(dst, func(w io.Writer) (int64, error) {
		return d.client.Fetch(ctx, signedURL, w)
	})
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		logger.Logger.WithError(err).Warn("[downloadSession.run] saving download failed")
		return cli.NewExitError(usecase.MsgDownloadFailed, 1)
	}
	fmt.Printf("Saved %s (%d bytes)\n", dst, written)
	return nil
}

// exit turns the message shown by the review flow into the command error.
func (d *downloadSession) exit(ctx context.Context, msg string) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	return cli.NewExitError(msg, 1)
}

// pickFile selects the file by --key, --index or an interactive menu.
func (d *downloadSession) pickFile(job entity.Job) (entity.FileRef, error) {
	files := listFiles(job)

	if d.key != "" {
		for _, file := range files {
			if file.Key == d.key {
				return file, nil
			}
		}
		return entity.FileRef{}, cli.NewExitError(fmt.Sprintf("No file with key %q in this job.", d.key), 1)
	}
	if d.index < 0 {
		return entity.FileRef{}, errors.New("--index should be a positive number")
	}

	if len(files) == 0 {
		return entity.FileRef{}, cli.NewExitError("No submissions yet.", 1)
	}
	if d.index > len(files) {
		return entity.FileRef{}, fmt.Errorf("--index should be between 1 and %d", len(files))
	}
	if d.index > 0 {
		return files[d.index-1], nil
	}

	labels := make([]string, len(files))
	for i, file := range files {
		labels[i] = file.Name
	}
	prompt := promptui.Select{
		Label: "File",
		Items: labels,
	}
	i, _, err := prompt.Run()
	if err != nil {
		return entity.FileRef{}, err
	}
	return files[i], nil
}

// listFiles flattens the files of all submissions in server order.
func listFiles(job entity.Job) []entity.FileRef {
	files := []entity.FileRef{}
	for _, submission := range job.Submissions {
		files = append(files, submission.Files...)
	}
	return files
}
