package cmd

import (
	"fmt"

	"github.com/alecthomas/repr"
	jsoniter "github.com/json-iterator/go"
)

func emit(v interface{}) error {
	switch outputFormat() {
	case "text":
		fmt.Println(v)
		return nil
	case "json":
		buf, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(v, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(buf))
		return nil
	case "repr":
		fmt.Println(repr.String(v, repr.Indent("  ")))
		return nil
	default:
		return fmt.Errorf("unknown output format %q", outputFormat())
	}
}
