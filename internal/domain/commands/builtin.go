package commands

import (
	"context"
	"fmt"

	"github.com/GriffinCanCode/BlinkMD/backend/internal/domain/files"
	"github.com/GriffinCanCode/BlinkMD/backend/internal/host"
)

// Built-in command names
const (
	Ping       = "ping"
	OpenFile   = "open_file"
	SaveFile   = "save_file"
	SaveFileAs = "save_file_as"
	ExitApp    = "exit_app"
)

// PongResult is the ping response.
const PongResult = "pong"

// OpenArgs are the open_file arguments
type OpenArgs struct {
	Path *string `json:"path"`
}

// WriteArgs are the save_file and save_file_as arguments
type WriteArgs struct {
	Path    *string `json:"path"`
	Content *string `json:"content"`
}

// RegisterBuiltins registers ping, the file commands and exit_app.
func RegisterBuiltins(r *Registry, svc *files.Service, ctrl host.Controller) error {
	builtins := []struct {
		name    string
		handler Handler
	}{
		{Ping, ping},
		{OpenFile, openFile(svc)},
		{SaveFile, writeFile(svc.Save)},
		{SaveFileAs, writeFile(svc.SaveAs)},
		{ExitApp, exitApp(ctrl)},
	}

	for _, b := range builtins {
		if err := r.Register(b.name, b.handler); err != nil {
			return err
		}
	}
	return nil
}

func ping(_ context.Context, _ []byte) (interface{}, error) {
	return PongResult, nil
}

func openFile(svc *files.Service) Handler {
	return func(_ context.Context, raw []byte) (interface{}, error) {
		var args OpenArgs
		if err := DecodeArgs(raw, &args); err != nil {
			return nil, err
		}
		if args.Path == nil {
			return nil, fmt.Errorf("%w: path is required", ErrInvalidArguments)
		}
		return svc.Open(*args.Path)
	}
}

func writeFile(write func(path, content string) (string, error)) Handler {
	return func(_ context.Context, raw []byte) (interface{}, error) {
		var args WriteArgs
		if err := DecodeArgs(raw, &args); err != nil {
			return nil, err
		}
		if args.Path == nil {
			return nil, fmt.Errorf("%w: path is required", ErrInvalidArguments)
		}
		if args.Content == nil {
			return nil, fmt.Errorf("%w: content is required", ErrInvalidArguments)
		}
		return write(*args.Path, *args.Content)
	}
}

func exitApp(ctrl host.Controller) Handler {
	return func(_ context.Context, _ []byte) (interface{}, error) {
		ctrl.Exit(0)
		return nil, nil
	}
}
