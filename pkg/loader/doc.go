// Package loader provides i18next.Source implementations that read
// translation documents from a file system or an S3-compatible bucket.
//
// Documents are located with a path pattern. "__lng__" captures the language
// and "__ns__" the namespace; any other "__name__" placeholder matches a path
// element without being used:
//
//	src, err := loader.Open("./locales/__lng__/__ns__.json")
//	inst, err := i18next.Init(ctx, "en", src)
//
// A pattern without a known extension is treated as a directory holding
// "translation.json". A pattern without placeholders names a single document
// whose top-level keys are language codes:
//
//	{"en": {"hello": "Hello"}, "de": {"hello": "Hallo"}}
//
// # Formats
//
// The decoder is chosen by extension: .json, .yaml/.yml and .toml.
// Parse failures wrap i18next.ErrInvalidSource; a pattern that matches
// nothing wraps i18next.ErrSourceNotFound.
//
// # S3
//
//	client, err := loader.NewS3Client(loader.S3Config{
//		Bucket:    "translations",
//		Endpoint:  "http://localhost:9000",
//		PathStyle: true,
//	})
//	src, err := loader.NewS3(client, "translations", "locales/__lng__/__ns__.yaml",
//		loader.WithConcurrency(4),
//	)
//
// Objects are listed under the pattern's static prefix and fetched
// concurrently.
package loader
