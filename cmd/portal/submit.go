package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/urfave/cli"

	"github.com/nativebridge/portal-go/internal/logger"
	"github.com/nativebridge/portal-go/internal/portal/entity"
	"github.com/nativebridge/portal-go/internal/portal/repository"
	"github.com/nativebridge/portal-go/internal/portal/usecase"
)

// submitSession walks the submission flow from the terminal. Values given as
// flags are used for the first cycle only.
type submitSession struct {
	flow        *usecase.SubmissionFlow
	interactive bool

	code     string
	filePath string
	url      string
	notes    string
}

func (s *submitSession) run(ctx context.Context) error {
	for {
		err := s.enterCode(ctx)
		if err != nil {
			return err
		}

		err = s.composeDraft()
		if err != nil {
			return err
		}

		done, err := s.send(ctx)
		if err != nil {
			return err
		}
		if !done {
			// session was lost, start again from the code
			continue
		}

		if !s.interactive || !confirm("Submit more work") {
			return nil
		}
		err = s.flow.Reset()
		if err != nil {
			return err
		}
	}
}

func (s *submitSession) enterCode(ctx context.Context) (err error) {
	for s.flow.View().Step == usecase.StepCode {
		input := s.code
		s.code = ""
		if input == "" && s.interactive {
			fmt.Println("Open your NativeBridge app, start a desktop submission, and enter the 6-digit code shown on your phone.")
			input, err = promptText("Submission Code", nil)
			if err != nil {
				return
			}
		}

		s.flow.SetCode(input)
		fmt.Println("Checking...")
		session, lookupErr := s.flow.Lookup(ctx)
		if lookupErr != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if !s.interactive {
				return cli.NewExitError(lookupErr.Error(), 1)
			}
			printBanner(s.flow.View().Error)
			continue
		}
		printSession(session)
	}
	return nil
}

func (s *submitSession) composeDraft() (err error) {
	file, link, text := s.filePath, s.url, s.notes
	s.filePath, s.url, s.notes = "", "", ""

	if s.interactive && file == "" && link == "" {
		file, link, text, err = promptDraft(text)
		if err != nil {
			return
		}
	}

	var attachment entity.Attachment
	if file != "" {
		fileAttachment, err := repository.NewFileAttachment(file)
		if err != nil {
			return err
		}
		attachment = fileAttachment
	}

	err = s.flow.SetFile(attachment)
	if err != nil {
		return
	}
	err = s.flow.SetURL(link)
	if err != nil {
		return
	}
	return s.flow.SetNotes(text)
}

// send submits until the flow reaches the done step or cannot continue, and
// reports whether it got there. A cancelled context ends the session.
func (s *submitSession) send(ctx context.Context) (bool, error) {
	for {
		fmt.Println("Submitting...")
		msg, err := s.flow.Submit(ctx)
		if err == nil {
			printDone(msg)
			return true, nil
		}
		if ctx.Err() != nil {
			return false, ctx.Err()
		}
		if !s.interactive {
			return false, cli.NewExitError(err.Error(), 1)
		}
		printBanner(s.flow.View().Error)

		var stateErr usecase.StateError
		if errors.As(err, &stateErr) {
			return false, nil
		}

		var validationErr usecase.ValidationError
		if errors.As(err, &validationErr) {
			err = s.composeDraft()
			if err != nil {
				return false, err
			}
			continue
		}

		logger.Logger.WithError(err).Debug("[submitSession.send] submission failed, asking for retry")
		if !confirm("Retry") {
			return false, cli.NewExitError(err.Error(), 1)
		}
	}
}

func promptDraft(defaultNotes string) (file, link, text string, err error) {
	fmt.Println("How it works:")
	fmt.Println("  Option 1: Upload a file (zip, images, docs, etc.).")
	fmt.Println("  Option 2: Submit a link to your work (GitHub, Figma, website, etc.).")
	fmt.Println("  You can also do both.")

	file, err = promptText("File (optional)", validateOptionalFile)
	if err != nil {
		return
	}
	link, err = promptText("Work URL (optional)", nil)
	if err != nil {
		return
	}
	prompt := promptui.Prompt{
		Label:   "Notes for your client (optional)",
		Default: defaultNotes,
	}
	text, err = prompt.Run()
	return
}

func validateOptionalFile(input string) error {
	if strings.TrimSpace(input) == "" {
		return nil
	}
	_, err := repository.NewFileAttachment(strings.TrimSpace(input))
	return err
}

func promptText(label string, validate promptui.ValidateFunc) (string, error) {
	prompt := promptui.Prompt{
		Label:    label,
		Validate: validate,
	}
	result, err := prompt.Run()
	return strings.TrimSpace(result), err
}

func confirm(label string) bool {
	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
	}
	result, err := prompt.Run()
	if err != nil {
		return false
	}
	return strings.ToLower(result) == "y"
}
