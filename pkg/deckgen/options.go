package deckgen

// DefaultOutputPath is the fixed output file name of the generated deck.
const DefaultOutputPath = "Umuganda_Platform_Presentation.pptx"

// Options configures deck output.
type Options struct {
	// OutputPath is the path the .pptx file is written to.
	OutputPath string
}

// DefaultOptions returns default output options.
func DefaultOptions() Options {
	return Options{
		OutputPath: DefaultOutputPath,
	}
}
