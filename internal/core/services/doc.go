// Package services implements the driving port interfaces.
// Services contain the core export pipeline and orchestrate
// calls to driven ports (adapters).
//
// The pipeline runs in stages: fetch the bot, resolve intents, resolve
// the distinct custom slot types those intents use, normalise list order,
// then encode. Sibling fetches within a stage run concurrently and the
// first failure aborts the export.
package services
