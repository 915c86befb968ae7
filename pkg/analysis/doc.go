// Package analysis obtains a structured AI-governance analysis of a
// use-case description from a text-generation backend.
//
// # Overview
//
// The Client wraps any TextGenerator backend (Gemini, Anthropic, or the
// offline stub) with the behavior every backend call needs:
//
//   - prompt construction (fixed governance-expert instruction template
//     plus the use-case description plus optional serialized context)
//   - rate limiting (blocking token-bucket Acquire before every call)
//   - retry with exponential backoff (1s, 2s, 4s, ... up to max retries)
//   - response repair (code-fence stripping) and strict JSON parsing
//
// A successful call yields a GovernanceAnalysis with all five required
// fields populated. A response missing any required field is rejected;
// there is never a partially-populated result.
//
// # Swapping backends
//
// Backends are selected once at construction time via configuration,
// never by runtime type inspection:
//
//	client := analysis.NewClient(geminiBackend, limiter, analysis.Options{})
//	result, err := client.AnalyzeUseCase(ctx, description, map[string]string{
//	    "industry": "financial services",
//	})
package analysis
