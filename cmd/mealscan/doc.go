// Mealscan is a local-first meal photo nutrition estimator backed by vision
// LLM providers.
//
// It analyzes a photo of a meal, itemizes the food it sees with calories and
// macronutrients in English, Bengali, Hindi, and Assamese, and caches results
// by image fingerprint so the same photo never costs two remote calls.
//
// Usage:
//
//	mealscan analyze photo.jpg        # analyze a meal photo
//	mealscan analyze - < photo.jpg    # analyze from stdin
//	mealscan serve                    # serve the HTTP API
//	mealscan cache show               # show cache statistics
//	mealscan config init              # create a default config file
//
// See https://github.com/sdutta9/mealscan for full documentation.
package main
