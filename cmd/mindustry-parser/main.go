// Command mindustry-parser inspects and edits Mindustry settings.bin files.
package main

func main() {
	execute()
}
