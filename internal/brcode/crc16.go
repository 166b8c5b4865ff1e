package brcode

import "fmt"

// CRC16-CCITT definido pelo Bacen para o BR Code
// Polinômio: 0x1021
// Valor inicial: 0xFFFF
// Reflexão: não
// XOR na saída: 0x0000
const (
	crc16Polynomial uint16 = 0x1021
	crc16Initial    uint16 = 0xFFFF
)

// crc16Table é a tabela pré-calculada para o polinômio 0x1021
var crc16Table [256]uint16

func init() {
	for i := 0; i < 256; i++ {
		crc := uint16(i) << 8
		for bit := 0; bit < 8; bit++ {
			if crc&0x8000 != 0 {
				crc = (crc << 1) ^ crc16Polynomial
			} else {
				crc <<= 1
			}
		}
		crc16Table[i] = crc
	}
}

// CRC16 calcula o CRC16-CCITT (0xFFFF, 0x1021) dos bytes informados
func CRC16(data []byte) uint16 {
	crc := crc16Initial
	for _, b := range data {
		crc = (crc << 8) ^ crc16Table[byte(crc>>8)^b]
	}
	return crc
}

// crc16Bitwise é a versão bit a bit do cálculo, como descrita no manual.
// Usada nos testes para conferir a tabela.
func crc16Bitwise(data []byte) uint16 {
	result := uint32(crc16Initial)
	for _, b := range data {
		result ^= uint32(b) << 8
		for bit := 0; bit < 8; bit++ {
			result <<= 1
			if result&0x10000 != 0 {
				result ^= uint32(crc16Polynomial)
			}
			result &= 0xFFFF
		}
	}
	return uint16(result)
}

// ChecksumSection calcula a seção do CRC (id 63, tamanho 04) do payload.
// O CRC cobre o payload já com "6304" no final, sem o valor.
func ChecksumSection(payload string) string {
	crc := CRC16([]byte(payload + crcSectionPrefix))
	return fmt.Sprintf("%s%04X", crcSectionPrefix, crc)
}
