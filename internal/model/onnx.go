package model

import (
	"context"
	"fmt"

	ort "github.com/yalue/onnxruntime_go"
)

// ONNXClassifier runs a classifier exported to ONNX. The session is created
// once and shared; tensors are allocated per call so Predict is safe for
// concurrent use.
type ONNXClassifier struct {
	session  *ort.DynamicAdvancedSession
	Metadata *Metadata
}

// NewONNXClassifier initializes the ONNX runtime and opens a session on the model.
func NewONNXClassifier(modelPath string, metadata *Metadata, sharedLibraryPath string) (*ONNXClassifier, error) {
	if sharedLibraryPath != "" {
		ort.SetSharedLibraryPath(sharedLibraryPath)
	}
	if err := ort.InitializeEnvironment(); err != nil {
		return nil, fmt.Errorf("failed to initialize ONNX environment: %w", err)
	}

	session, err := ort.NewDynamicAdvancedSession(modelPath,
		[]string{metadata.InputName}, []string{metadata.OutputName}, nil)
	if err != nil {
		ort.DestroyEnvironment()
		return nil, fmt.Errorf("failed to create ONNX session: %w", err)
	}

	return &ONNXClassifier{
		session:  session,
		Metadata: metadata,
	}, nil
}

// Predict runs the model on a single row and returns the predicted label.
func (c *ONNXClassifier) Predict(ctx context.Context, row map[string]float64) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	values, err := Columns(row, c.Metadata.Features)
	if err != nil {
		return 0, err
	}

	input, err := ort.NewTensor(ort.NewShape(1, int64(len(values))), values)
	if err != nil {
		return 0, fmt.Errorf("failed to create input tensor: %w", err)
	}
	defer input.Destroy()

	output, err := ort.NewEmptyTensor[int64](ort.NewShape(1))
	if err != nil {
		return 0, fmt.Errorf("failed to create output tensor: %w", err)
	}
	defer output.Destroy()

	if err := c.session.Run([]ort.ArbitraryTensor{input}, []ort.ArbitraryTensor{output}); err != nil {
		return 0, fmt.Errorf("inference failed: %w", err)
	}

	labels := output.GetData()
	if len(labels) == 0 {
		return 0, ErrUnexpectedOutput
	}
	return int(labels[0]), nil
}

// Ping reports whether the session is open.
func (c *ONNXClassifier) Ping(context.Context) error {
	if c.session == nil {
		return fmt.Errorf("%w: session closed", ErrModelNotFound)
	}
	return nil
}

// Close releases the session and the runtime environment.
func (c *ONNXClassifier) Close() error {
	if c.session == nil {
		return nil
	}
	err := c.session.Destroy()
	c.session = nil
	if envErr := ort.DestroyEnvironment(); err == nil {
		err = envErr
	}
	return err
}
