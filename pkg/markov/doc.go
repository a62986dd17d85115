/*
Package markov provides a small, in-memory, first-order Markov chain text
generator.

A Model is created from a corpus string, trained once to build a transition
table that maps each whitespace-separated token to the tokens observed right
after it, and then used to generate new text by randomly walking that table.

	m := markov.New("the cat sat on the mat the cat ran")
	m.Train()
	text, err := m.Generate(markov.WithSeed("the"), markov.WithCount(3))

Randomness comes from a Source, which can be replaced with WithSource to make
generation reproducible.
*/
package markov
