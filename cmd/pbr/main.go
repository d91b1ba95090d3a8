// Command pbr demonstrates progress bars of github.com/vbauerster/pbr.
package main

func main() {
	execute()
}
