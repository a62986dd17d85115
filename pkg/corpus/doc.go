// Package corpus stores named training texts in a SQLite database so they
// can be retrained into Markov models on demand. Only the text is stored;
// models are always rebuilt from it.
package corpus
