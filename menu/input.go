package menu

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

func ReadIndex(count int) (int, error) {
	in := bufio.NewReader(os.Stdin)
	fmt.Printf("Opción (1..%d): ", count)
	s, _ := in.ReadString('\n')
	s = strings.TrimSpace(s)
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > count {
		return 0, fmt.Errorf("entrada inválida")
	}
	return n, nil
}

func WaitEnter() {
	fmt.Print("\nPresiona Enter para continuar...")
	bufio.NewReader(os.Stdin).ReadString('\n')
}
