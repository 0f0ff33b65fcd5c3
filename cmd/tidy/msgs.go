package main

// Message constants
const (
	MsgRootShort = "Organize files into category folders by extension"
	MsgRootLong  = `tidy organizes the files in a directory into category subfolders
(docs, images, audio, …) based on file extension.

It is safe by default: it computes the full move plan before touching
anything, previews it, and asks for confirmation. Name collisions are
resolved by appending a counter ("report (2).pdf"), never by
overwriting. Unknown extensions go to a fallback folder.`
	MsgRootExample = `  # Preview what would happen (recommended first)
  tidy --source ~/Downloads --dry-run

  # Actually move files in place under ~/Downloads
  tidy --source ~/Downloads --yes

  # Organize recursively, including hidden files
  tidy -s . --recursive --include-hidden --yes

  # Use a custom rules file (see "tidy gen-rules" for a template)
  tidy -s ~/Inbox --rules rules.toml --yes`

	MsgGenRulesShort   = "Write a default rules file template and exit"
	MsgGenRulesLong    = "Write the built-in extension-to-category rules as a commented TOML template.\n\nRefuses to overwrite an existing file. Edit the result and pass it back with --rules."
	MsgGenRulesExample = `  tidy gen-rules rules.toml`

	MsgDocsShort = "Show long-form documentation on a topic"
	MsgDocsLong  = "Show detailed documentation shipped with tidy.\n\nWithout arguments, lists the available topics."
)
