// Package tokenizer implements byte-level Byte Pair Encoding (BPE)
// tokenization for the toyGPT pipeline.
//
// The package provides four tokenizer implementations:
//   - ByteTokenizer: the raw UTF-8 byte baseline (IDs 0-255)
//   - BPETokenizer: BPE trained over the input as one contiguous
//     byte sequence (NewBPETokenizer), or over regex-segmented chunks
//     sharing one vocabulary (NewRegexBPETokenizer)
//   - TikToken: pretrained OpenAI encodings via tiktoken-go
//
// Token IDs 0-255 always denote single raw bytes. Each learned merge
// is assigned the next free ID in training order, so an ID doubles as
// the merge's rank: lower ID means learned earlier and applied first
// at encode time.
//
// Example usage:
//
//	tok, err := tokenizer.NewRegexBPETokenizer()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Learn 256 merges from the corpus
//	if err := tok.Train(corpus, 512); err != nil {
//	    log.Fatal(err)
//	}
//
//	// Encode text
//	ids, err := tok.Encode("Hello, world!")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Decode tokens
//	text, err := tok.Decode(ids)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Persist the merge rules; Load reproduces identical encodings
//	if err := tok.Save("toy"); err != nil {
//	    log.Fatal(err)
//	}
package tokenizer
