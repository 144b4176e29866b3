package entity

import "github.com/readmekit/projectinfo/lib/git"

type ProjectReport struct {
	GitInfo      git.Metadata `json:"git_info"`
	Dependencies Dependencies `json:"dependencies"`
	Structure    Structure    `json:"structure"`
}

// Dependencies maps ecosystem to manifest entries. Other is reserved and
// always empty.
type Dependencies struct {
	Python []string `json:"python"`
	Node   []string `json:"node"`
	Other  []string `json:"other"`
}

func NewDependencies() Dependencies {
	return Dependencies{
		Python: []string{},
		Node:   []string{},
		Other:  []string{},
	}
}

// Structure holds slash-separated paths relative to the scan root.
type Structure struct {
	Directories []string `json:"directories"`
	KeyFiles    []string `json:"key_files"`
	TestFiles   []string `json:"test_files"`
	DocFiles    []string `json:"doc_files"`
}

func NewStructure() Structure {
	return Structure{
		Directories: []string{},
		KeyFiles:    []string{},
		TestFiles:   []string{},
		DocFiles:    []string{},
	}
}
