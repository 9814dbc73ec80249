// Package providers implements the Analyzer interface for each supported
// vision-language provider.
//
// Supported providers: Google (Gemini), OpenAI (GPT-4o family), and Ollama
// for local multimodal models such as llava.
//
// Every client makes exactly one attempt per call: rate limits are surfaced
// to the caller rather than retried, because silent retry burns remote quota
// and retry here is a user-initiated action. Failures are typed so the
// orchestrator can classify them: missing or rejected credentials are
// configuration errors, HTTP 429 is a rate limit, and everything else is a
// transport failure.
//
// HTTP clients are injected via a transport field so that tests can redirect
// calls to local httptest servers without making live API requests.
//
// Use [New] to obtain an Analyzer by provider name and model string.
package providers
