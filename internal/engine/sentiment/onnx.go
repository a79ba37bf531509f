package sentiment

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	ort "github.com/yalue/onnxruntime_go"
)

// numStars is the output width of the star-rating model: one logit per
// rating 1..5.
const numStars = 5

// ortEnv manages global ONNX Runtime initialization (process-wide singleton).
var ortEnv struct {
	once sync.Once
	err  error
}

// initORT initializes the ONNX Runtime environment. Safe to call multiple
// times; only the first call has any effect.
func initORT(libPath string) error {
	ortEnv.once.Do(func() {
		ort.SetSharedLibraryPath(libPath)
		ortEnv.err = ort.InitializeEnvironment()
	})
	return ortEnv.err
}

// ONNX is a Classifier running a local 5-star BERT sequence-classification
// model through ONNX Runtime. Model load is expensive; construct once and
// reuse across analysis requests.
type ONNX struct {
	session *onnxSession
	tok     *tokenizer
}

// NewONNX loads the ONNX model and WordPiece vocabulary.
func NewONNX(modelPath, vocabPath string) (*ONNX, error) {
	sess, err := newONNXSession(modelPath)
	if err != nil {
		return nil, fmt.Errorf("sentiment: %w", err)
	}

	tok, err := newTokenizer(vocabPath)
	if err != nil {
		sess.close()
		return nil, fmt.Errorf("sentiment: %w", err)
	}

	return &ONNX{session: sess, tok: tok}, nil
}

// ClassifyBatch tokenizes the texts, runs one batched inference call, and
// converts each logit row to its argmax star rating.
func (o *ONNX) ClassifyBatch(ctx context.Context, texts []string) ([]int, error) {
	if len(texts) == 0 {
		return nil, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	batch := o.tok.tokenizeBatch(texts)

	logits, err := o.session.infer(
		batch.inputIDs, batch.attentionMask, batch.tokenTypeIDs,
		batch.batchSize, batch.seqLen,
	)
	if err != nil {
		return nil, fmt.Errorf("sentiment: %w", err)
	}

	ratings := make([]int, batch.batchSize)
	for i := int64(0); i < batch.batchSize; i++ {
		row := logits[i*numStars : (i+1)*numStars]
		ratings[i] = argmax(row) + 1
	}
	return ratings, nil
}

// Close releases ONNX Runtime resources.
func (o *ONNX) Close() error {
	if o.session != nil {
		return o.session.close()
	}
	return nil
}

func argmax(row []float32) int {
	best := 0
	for i := 1; i < len(row); i++ {
		if row[i] > row[best] {
			best = i
		}
	}
	return best
}

// onnxSession wraps a DynamicAdvancedSession for BERT-style classification
// models with a [batch, 5] logits output.
type onnxSession struct {
	session    *ort.DynamicAdvancedSession
	inputNames []string
	outputName string
}

// newONNXSession loads the ONNX model and creates an inference session.
// It validates the model's input tensor names and the logits output shape.
func newONNXSession(modelPath string) (*onnxSession, error) {
	// The ONNX Runtime shared library ships alongside the model files.
	modelDir := filepath.Dir(modelPath)
	libPath := filepath.Join(modelDir, "libonnxruntime.so")

	if err := initORT(libPath); err != nil {
		return nil, fmt.Errorf("onnx: failed to initialize runtime: %w", err)
	}

	inputs, outputs, err := ort.GetInputOutputInfo(modelPath)
	if err != nil {
		return nil, fmt.Errorf("onnx: failed to read model info: %w", err)
	}

	inputNames, err := validateInputs(inputs)
	if err != nil {
		return nil, err
	}

	// Expect a single logits tensor of shape [batch, 5].
	if len(outputs) == 0 {
		return nil, fmt.Errorf("onnx: model has no outputs")
	}
	outputName := outputs[0].Name
	dims := outputs[0].Dimensions
	if len(dims) != 2 {
		return nil, fmt.Errorf("onnx: expected 2D logits tensor, got %v", dims)
	}
	if dims[1] != numStars {
		return nil, fmt.Errorf("onnx: expected %d rating classes, got %d", numStars, dims[1])
	}

	opts, err := ort.NewSessionOptions()
	if err != nil {
		return nil, fmt.Errorf("onnx: failed to create session options: %w", err)
	}
	defer opts.Destroy()
	opts.SetIntraOpNumThreads(4)
	opts.SetInterOpNumThreads(1)

	session, err := ort.NewDynamicAdvancedSession(
		modelPath,
		inputNames,
		[]string{outputName},
		opts,
	)
	if err != nil {
		return nil, fmt.Errorf("onnx: failed to create session: %w", err)
	}

	return &onnxSession{
		session:    session,
		inputNames: inputNames,
		outputName: outputName,
	}, nil
}

// validateInputs checks that the model has the expected BERT-style inputs
// and returns them in the correct order.
func validateInputs(inputs []ort.InputOutputInfo) ([]string, error) {
	nameSet := make(map[string]bool, len(inputs))
	for _, inp := range inputs {
		nameSet[inp.Name] = true
	}
	required := []string{"input_ids", "attention_mask", "token_type_ids"}
	for _, name := range required {
		if !nameSet[name] {
			return nil, fmt.Errorf("onnx: model missing required input %q", name)
		}
	}
	return required, nil
}

// infer runs a single inference call. inputIDs, attentionMask, and
// tokenTypeIDs are flat [batchSize * seqLen] slices. Returns the logits
// as a flat float32 slice of shape [batchSize * numStars].
func (s *onnxSession) infer(inputIDs, attentionMask, tokenTypeIDs []int64, batchSize, seqLen int64) ([]float32, error) {
	shape := ort.NewShape(batchSize, seqLen)

	tIDs, err := ort.NewTensor(shape, inputIDs)
	if err != nil {
		return nil, fmt.Errorf("onnx: failed to create input_ids tensor: %w", err)
	}
	defer tIDs.Destroy()

	tMask, err := ort.NewTensor(shape, attentionMask)
	if err != nil {
		return nil, fmt.Errorf("onnx: failed to create attention_mask tensor: %w", err)
	}
	defer tMask.Destroy()

	tTypes, err := ort.NewTensor(shape, tokenTypeIDs)
	if err != nil {
		return nil, fmt.Errorf("onnx: failed to create token_type_ids tensor: %w", err)
	}
	defer tTypes.Destroy()

	outShape := ort.NewShape(batchSize, numStars)
	tOut, err := ort.NewEmptyTensor[float32](outShape)
	if err != nil {
		return nil, fmt.Errorf("onnx: failed to create output tensor: %w", err)
	}
	defer tOut.Destroy()

	err = s.session.Run(
		[]ort.Value{tIDs, tMask, tTypes},
		[]ort.Value{tOut},
	)
	if err != nil {
		return nil, fmt.Errorf("onnx: inference failed: %w", err)
	}

	// Copy data out before the tensor is destroyed.
	src := tOut.GetData()
	result := make([]float32, len(src))
	copy(result, src)
	return result, nil
}

// close releases the ONNX session resources.
func (s *onnxSession) close() error {
	return s.session.Destroy()
}
